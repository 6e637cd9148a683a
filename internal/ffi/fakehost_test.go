package ffi

import (
	"sync"
	"testing"
	"unsafe"
)

// fakeQueue backs the message entry points with an in-memory event
// queue so queue semantics are testable without a host library.
type fakeQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	events []ExMessageC
}

func installFakeQueue(t *testing.T, events ...ExMessageC) *fakeQueue {
	t.Helper()
	q := &fakeQueue{events: append([]ExMessageC(nil), events...)}
	q.cond = sync.NewCond(&q.mu)

	prevInit := initialized
	prevGet := fnGetMessage
	prevPeek := fnPeekMessage
	prevFlush := fnFlushMessage
	initialized = true
	fnGetMessage = func(p uintptr, filter uint8) {
		q.get(p, MessageFilter(filter))
	}
	fnPeekMessage = func(p uintptr, filter uint8, removeMsg int32) int32 {
		return q.peek(p, MessageFilter(filter), removeMsg != 0)
	}
	fnFlushMessage = func(filter uint8) {
		q.flush(MessageFilter(filter))
	}
	t.Cleanup(func() {
		initialized = prevInit
		fnGetMessage = prevGet
		fnPeekMessage = prevPeek
		fnFlushMessage = prevFlush
	})
	return q
}

func (q *fakeQueue) push(e ExMessageC) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
	q.cond.Broadcast()
}

func (q *fakeQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// matchLocked returns the index of the first queued event in filter.
func (q *fakeQueue) matchLocked(filter MessageFilter) int {
	for i := range q.events {
		if MessageFilter(decodeMessage(&q.events[i]).Kind)&filter != 0 {
			return i
		}
	}
	return -1
}

func (q *fakeQueue) get(p uintptr, filter MessageFilter) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for {
		if i := q.matchLocked(filter); i >= 0 {
			*(*ExMessageC)(unsafe.Pointer(p)) = q.events[i]
			q.events = append(q.events[:i], q.events[i+1:]...)
			return
		}
		q.cond.Wait()
	}
}

func (q *fakeQueue) peek(p uintptr, filter MessageFilter, remove bool) int32 {
	q.mu.Lock()
	defer q.mu.Unlock()
	i := q.matchLocked(filter)
	if i < 0 {
		return 0
	}
	*(*ExMessageC)(unsafe.Pointer(p)) = q.events[i]
	if remove {
		q.events = append(q.events[:i], q.events[i+1:]...)
	}
	return 1
}

func (q *fakeQueue) flush(filter MessageFilter) {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.events[:0]
	for i := range q.events {
		if MessageFilter(decodeMessage(&q.events[i]).Kind)&filter == 0 {
			kept = append(kept, q.events[i])
		}
	}
	q.events = kept
}

// fakeImages backs the image entry points with a handle table.
type fakeImages struct {
	mu        sync.Mutex
	next      uintptr
	imgs      map[uintptr]*fakeImage
	destroyed int
}

type fakeImage struct {
	w, h int32
	px   []uint32
}

func installFakeImages(t *testing.T) *fakeImages {
	t.Helper()
	f := &fakeImages{next: 1, imgs: make(map[uintptr]*fakeImage)}

	prevInit := initialized
	prevCreate := fnCreateImage
	prevDestroy := fnDestroyImage
	prevWidth := fnImageGetWidth
	prevHeight := fnImageGetHeight
	prevResize := fnImageResize
	prevBuffer := fnGetImageBuffer
	initialized = true
	fnCreateImage = f.create
	fnDestroyImage = f.destroy
	fnImageGetWidth = f.width
	fnImageGetHeight = f.height
	fnImageResize = f.resize
	fnGetImageBuffer = f.buffer
	t.Cleanup(func() {
		initialized = prevInit
		fnCreateImage = prevCreate
		fnDestroyImage = prevDestroy
		fnImageGetWidth = prevWidth
		fnImageGetHeight = prevHeight
		fnImageResize = prevResize
		fnGetImageBuffer = prevBuffer
	})
	return f
}

func (f *fakeImages) create(w, h int32) uintptr {
	f.mu.Lock()
	defer f.mu.Unlock()
	handle := f.next
	f.next++
	f.imgs[handle] = &fakeImage{w: w, h: h, px: make([]uint32, int(w)*int(h))}
	return handle
}

func (f *fakeImages) destroy(handle uintptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.imgs[handle]; ok {
		delete(f.imgs, handle)
		f.destroyed++
	}
}

func (f *fakeImages) width(handle uintptr) int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if img, ok := f.imgs[handle]; ok {
		return img.w
	}
	return 0
}

func (f *fakeImages) height(handle uintptr) int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if img, ok := f.imgs[handle]; ok {
		return img.h
	}
	return 0
}

func (f *fakeImages) resize(handle uintptr, w, h int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if img, ok := f.imgs[handle]; ok {
		img.w, img.h = w, h
		img.px = make([]uint32, int(w)*int(h))
	}
}

func (f *fakeImages) buffer(handle uintptr) uintptr {
	f.mu.Lock()
	defer f.mu.Unlock()
	img, ok := f.imgs[handle]
	if !ok || len(img.px) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&img.px[0]))
}
