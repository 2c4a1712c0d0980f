package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background      tcell.Color
	Foreground      tcell.Color
	HeaderBg        tcell.Color
	HeaderFg        tcell.Color
	SidebarBg       tcell.Color
	SidebarFg       tcell.Color
	SidebarActiveBg tcell.Color
	SidebarActiveFg tcell.Color
	HiddenFg        tcell.Color
	CursorBg        tcell.Color
	CursorFg        tcell.Color
	MarkBg          tcell.Color
	MarkFg          tcell.Color
	DirectoryFg     tcell.Color
	SymlinkFg       tcell.Color
	FileFg          tcell.Color
	CutFg           tcell.Color
	ErrorFg         tcell.Color
	FooterBg        tcell.Color
	FooterFg        tcell.Color
	PromptFg        tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:      tcell.ColorDefault,
		Foreground:      tcell.ColorDefault,
		HeaderBg:        tcell.ColorDefault,
		HeaderFg:        tcell.ColorDefault,
		SidebarBg:       tcell.ColorDefault,
		SidebarFg:       tcell.ColorDefault,
		SidebarActiveBg: tcell.Color33,
		SidebarActiveFg: tcell.ColorWhite,
		HiddenFg:        tcell.ColorLightSlateGray,
		CursorBg:        tcell.Color33,
		CursorFg:        tcell.ColorWhite,
		MarkBg:          tcell.Color237,
		MarkFg:          tcell.Color229, // pale yellow so marks stay visible on dark terminals
		DirectoryFg:     tcell.Color33,
		SymlinkFg:       tcell.Color51,
		FileFg:          tcell.ColorDefault,
		CutFg:           tcell.Color244,
		ErrorFg:         tcell.Color203,
		FooterBg:        tcell.ColorDefault,
		FooterFg:        tcell.ColorDefault,
		PromptFg:        tcell.Color44,
	}
}
