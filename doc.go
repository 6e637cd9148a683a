// Package easyx is a Go binding for the EasyX 2-D graphics library.
// The host library is loaded dynamically at runtime; no CGo is
// involved.
//
// A Window is the drawing context. The host keeps one window and one
// set of drawing state per process, so programs hold a single Window
// and thread it through their drawing code:
//
//	err := easyx.Run(640, 480, func(w *easyx.Window) error {
//		w.SetLineColor(easyx.Yellow)
//		w.Circle(320, 240, 100)
//		for {
//			msg, err := w.GetMessage(easyx.FilterMouse | easyx.FilterKey)
//			if err != nil {
//				return err
//			}
//			if msg.Kind == easyx.KindKey && msg.Key.VKCode == easyx.KeyEscape {
//				return nil
//			}
//		}
//	})
//
// All strings are ordinary Go strings; conversion to the host's wide
// character encoding happens inside the binding. Text that cannot be
// converted renders as empty rather than failing, matching the host's
// own behavior.
//
// The host library is located through the EASYX_LIBRARY_PATH
// environment variable, a Config, or a handful of conventional
// locations next to the executable.
package easyx
