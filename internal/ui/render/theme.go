package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	PanelBg        tcell.Color
	PanelFg        tcell.Color
	BorderFg       tcell.Color
	TitleBg        tcell.Color
	TitleFg        tcell.Color
	ActiveTitleBg  tcell.Color
	ActiveTitleFg  tcell.Color
	SelectionBg    tcell.Color
	SelectionFg    tcell.Color
	DirectoryFg    tcell.Color
	FileFg         tcell.Color
	MarkedFg       tcell.Color
	PopupBg        tcell.Color
	PopupFg        tcell.Color
	ErrorTitleFg   tcell.Color
	InputBg        tcell.Color
	InputFg        tcell.Color
	InputCursorBg  tcell.Color
	ButtonActiveBg tcell.Color
	ButtonActiveFg tcell.Color
	EditorBg       tcell.Color
	EditorFg       tcell.Color
	EditorCursorBg tcell.Color
	FooterKeyFg    tcell.Color
	FooterLabelBg  tcell.Color
	FooterLabelFg  tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		PanelBg:        tcell.ColorNavy,
		PanelFg:        tcell.ColorWhite,
		BorderFg:       tcell.ColorWhite,
		TitleBg:        tcell.ColorNavy,
		TitleFg:        tcell.ColorWhite,
		ActiveTitleBg:  tcell.ColorTeal,
		ActiveTitleFg:  tcell.ColorBlack,
		SelectionBg:    tcell.ColorTeal,
		SelectionFg:    tcell.ColorBlack,
		DirectoryFg:    tcell.ColorWhite,
		FileFg:         tcell.ColorAqua,
		MarkedFg:       tcell.ColorYellow,
		PopupBg:        tcell.ColorSilver,
		PopupFg:        tcell.ColorBlack,
		ErrorTitleFg:   tcell.ColorMaroon,
		InputBg:        tcell.ColorNavy,
		InputFg:        tcell.ColorWhite,
		InputCursorBg:  tcell.ColorTeal,
		ButtonActiveBg: tcell.ColorTeal,
		ButtonActiveFg: tcell.ColorBlack,
		EditorBg:       tcell.ColorNavy,
		EditorFg:       tcell.ColorWhite,
		EditorCursorBg: tcell.ColorAqua,
		FooterKeyFg:    tcell.ColorWhite,
		FooterLabelBg:  tcell.ColorTeal,
		FooterLabelFg:  tcell.ColorBlack,
	}
}
