package palette

var latte = Palette{
	Name:      Latte,
	Rosewater: rgb(0xdc8a78),
	Flamingo:  rgb(0xdd7878),
	Pink:      rgb(0xea76cb),
	Mauve:     rgb(0x8839ef),
	Red:       rgb(0xd20f39),
	Maroon:    rgb(0xe64553),
	Peach:     rgb(0xfe640b),
	Yellow:    rgb(0xdf8e1d),
	Green:     rgb(0x40a02b),
	Teal:      rgb(0x179299),
	Sky:       rgb(0x04a5e5),
	Sapphire:  rgb(0x209fb5),
	Blue:      rgb(0x1e66f5),
	Lavender:  rgb(0x7287fd),
	Text:      rgb(0x4c4f69),
	Subtext1:  rgb(0x5c5f77),
	Subtext0:  rgb(0x6c6f85),
	Overlay2:  rgb(0x7c7f93),
	Overlay1:  rgb(0x8c8fa1),
	Overlay0:  rgb(0x9ca0b0),
	Surface2:  rgb(0xacb0be),
	Surface1:  rgb(0xbcc0cc),
	Surface0:  rgb(0xccd0da),
	Base:      rgb(0xeff1f5),
	Mantle:    rgb(0xe6e9ef),
	Crust:     rgb(0xdce0e8),
}

var frappe = Palette{
	Name:      Frappe,
	Rosewater: rgb(0xf2d5cf),
	Flamingo:  rgb(0xeebebe),
	Pink:      rgb(0xf4b8e4),
	Mauve:     rgb(0xca9ee6),
	Red:       rgb(0xe78284),
	Maroon:    rgb(0xea999c),
	Peach:     rgb(0xef9f76),
	Yellow:    rgb(0xe5c890),
	Green:     rgb(0xa6d189),
	Teal:      rgb(0x81c8be),
	Sky:       rgb(0x99d1db),
	Sapphire:  rgb(0x85c1dc),
	Blue:      rgb(0x8caaee),
	Lavender:  rgb(0xbabbf1),
	Text:      rgb(0xc6d0f5),
	Subtext1:  rgb(0xb5bfe2),
	Subtext0:  rgb(0xa5adce),
	Overlay2:  rgb(0x949cbb),
	Overlay1:  rgb(0x838ba7),
	Overlay0:  rgb(0x737994),
	Surface2:  rgb(0x626880),
	Surface1:  rgb(0x51576d),
	Surface0:  rgb(0x414559),
	Base:      rgb(0x303446),
	Mantle:    rgb(0x292c3c),
	Crust:     rgb(0x232634),
}

var macchiato = Palette{
	Name:      Macchiato,
	Rosewater: rgb(0xf4dbd6),
	Flamingo:  rgb(0xf0c6c6),
	Pink:      rgb(0xf5bde6),
	Mauve:     rgb(0xc6a0f6),
	Red:       rgb(0xed8796),
	Maroon:    rgb(0xee99a0),
	Peach:     rgb(0xf5a97f),
	Yellow:    rgb(0xeed49f),
	Green:     rgb(0xa6da95),
	Teal:      rgb(0x8bd5ca),
	Sky:       rgb(0x91d7e3),
	Sapphire:  rgb(0x7dc4e4),
	Blue:      rgb(0x8aadf4),
	Lavender:  rgb(0xb7bdf8),
	Text:      rgb(0xcad3f5),
	Subtext1:  rgb(0xb8c0e0),
	Subtext0:  rgb(0xa5adcb),
	Overlay2:  rgb(0x939ab7),
	Overlay1:  rgb(0x8087a2),
	Overlay0:  rgb(0x6e738d),
	Surface2:  rgb(0x5b6078),
	Surface1:  rgb(0x494d64),
	Surface0:  rgb(0x363a4f),
	Base:      rgb(0x24273a),
	Mantle:    rgb(0x1e2030),
	Crust:     rgb(0x181926),
}

var mocha = Palette{
	Name:      Mocha,
	Rosewater: rgb(0xf5e0dc),
	Flamingo:  rgb(0xf2cdcd),
	Pink:      rgb(0xf5c2e7),
	Mauve:     rgb(0xcba6f7),
	Red:       rgb(0xf38ba8),
	Maroon:    rgb(0xeba0ac),
	Peach:     rgb(0xfab387),
	Yellow:    rgb(0xf9e2af),
	Green:     rgb(0xa6e3a1),
	Teal:      rgb(0x94e2d5),
	Sky:       rgb(0x89dceb),
	Sapphire:  rgb(0x74c7ec),
	Blue:      rgb(0x89b4fa),
	Lavender:  rgb(0xb4befe),
	Text:      rgb(0xcdd6f4),
	Subtext1:  rgb(0xbac2de),
	Subtext0:  rgb(0xa6adc8),
	Overlay2:  rgb(0x9399b2),
	Overlay1:  rgb(0x7f849c),
	Overlay0:  rgb(0x6c7086),
	Surface2:  rgb(0x585b70),
	Surface1:  rgb(0x45475a),
	Surface0:  rgb(0x313244),
	Base:      rgb(0x1e1e2e),
	Mantle:    rgb(0x181825),
	Crust:     rgb(0x11111b),
}
