package easyx

// KeyCode is a virtual-key code as reported in KeyMessage.VKCode.
type KeyCode = uint8

// Virtual-key codes.
const (
	KeyLButton KeyCode = 0x01
	KeyRButton KeyCode = 0x02
	KeyCancel  KeyCode = 0x03
	KeyMButton KeyCode = 0x04

	KeyBack    KeyCode = 0x08
	KeyTab     KeyCode = 0x09
	KeyClear   KeyCode = 0x0C
	KeyReturn  KeyCode = 0x0D
	KeyShift   KeyCode = 0x10
	KeyControl KeyCode = 0x11
	KeyMenu    KeyCode = 0x12
	KeyPause   KeyCode = 0x13
	KeyCapital KeyCode = 0x14
	KeyEscape  KeyCode = 0x1B
	KeySpace   KeyCode = 0x20

	KeyPrior    KeyCode = 0x21
	KeyNext     KeyCode = 0x22
	KeyEnd      KeyCode = 0x23
	KeyHome     KeyCode = 0x24
	KeyLeft     KeyCode = 0x25
	KeyUp       KeyCode = 0x26
	KeyRight    KeyCode = 0x27
	KeyDown     KeyCode = 0x28
	KeySelect   KeyCode = 0x29
	KeyPrint    KeyCode = 0x2A
	KeySnapshot KeyCode = 0x2C
	KeyInsert   KeyCode = 0x2D
	KeyDelete   KeyCode = 0x2E
	KeyHelp     KeyCode = 0x2F

	Key0 KeyCode = 0x30
	Key1 KeyCode = 0x31
	Key2 KeyCode = 0x32
	Key3 KeyCode = 0x33
	Key4 KeyCode = 0x34
	Key5 KeyCode = 0x35
	Key6 KeyCode = 0x36
	Key7 KeyCode = 0x37
	Key8 KeyCode = 0x38
	Key9 KeyCode = 0x39

	KeyA KeyCode = 0x41
	KeyB KeyCode = 0x42
	KeyC KeyCode = 0x43
	KeyD KeyCode = 0x44
	KeyE KeyCode = 0x45
	KeyF KeyCode = 0x46
	KeyG KeyCode = 0x47
	KeyH KeyCode = 0x48
	KeyI KeyCode = 0x49
	KeyJ KeyCode = 0x4A
	KeyK KeyCode = 0x4B
	KeyL KeyCode = 0x4C
	KeyM KeyCode = 0x4D
	KeyN KeyCode = 0x4E
	KeyO KeyCode = 0x4F
	KeyP KeyCode = 0x50
	KeyQ KeyCode = 0x51
	KeyR KeyCode = 0x52
	KeyS KeyCode = 0x53
	KeyT KeyCode = 0x54
	KeyU KeyCode = 0x55
	KeyV KeyCode = 0x56
	KeyW KeyCode = 0x57
	KeyX KeyCode = 0x58
	KeyY KeyCode = 0x59
	KeyZ KeyCode = 0x5A

	KeyLWin KeyCode = 0x5B
	KeyRWin KeyCode = 0x5C
	KeyApps KeyCode = 0x5D

	KeyNumPad0   KeyCode = 0x60
	KeyNumPad1   KeyCode = 0x61
	KeyNumPad2   KeyCode = 0x62
	KeyNumPad3   KeyCode = 0x63
	KeyNumPad4   KeyCode = 0x64
	KeyNumPad5   KeyCode = 0x65
	KeyNumPad6   KeyCode = 0x66
	KeyNumPad7   KeyCode = 0x67
	KeyNumPad8   KeyCode = 0x68
	KeyNumPad9   KeyCode = 0x69
	KeyMultiply  KeyCode = 0x6A
	KeyAdd       KeyCode = 0x6B
	KeySeparator KeyCode = 0x6C
	KeySubtract  KeyCode = 0x6D
	KeyDecimal   KeyCode = 0x6E
	KeyDivide    KeyCode = 0x6F

	KeyF1  KeyCode = 0x70
	KeyF2  KeyCode = 0x71
	KeyF3  KeyCode = 0x72
	KeyF4  KeyCode = 0x73
	KeyF5  KeyCode = 0x74
	KeyF6  KeyCode = 0x75
	KeyF7  KeyCode = 0x76
	KeyF8  KeyCode = 0x77
	KeyF9  KeyCode = 0x78
	KeyF10 KeyCode = 0x79
	KeyF11 KeyCode = 0x7A
	KeyF12 KeyCode = 0x7B

	KeyNumLock KeyCode = 0x90
	KeyScroll  KeyCode = 0x91

	KeyLShift   KeyCode = 0xA0
	KeyRShift   KeyCode = 0xA1
	KeyLControl KeyCode = 0xA2
	KeyRControl KeyCode = 0xA3
	KeyLMenu    KeyCode = 0xA4
	KeyRMenu    KeyCode = 0xA5
)
