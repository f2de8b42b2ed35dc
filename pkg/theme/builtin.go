package theme

// registerBuiltins registers all built-in themes.
func registerBuiltins() {
	for _, t := range []Theme{
		defaultTheme(),
		nordTheme(),
		monoTheme(),
	} {
		registry[t.Name] = t
	}
}

// defaultTheme is the dark neutral theme with a purple accent.
func defaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",
		Accent:     "#7C3AED",

		Border:      "#3e3e3e",
		BorderFocus: "#7C3AED",
		Title:       "#d4d4d4",

		Price:      "#e5c07b",
		InStock:    "#4ec970",
		OutOfStock: "#e06c75",
		Err:        "#e06c75",

		SearchHighlight: "#f9e2af",
		HelpKey:         "#7C3AED",
		HelpDesc:        "#6b6b6b",
	}
}

// nordTheme is the cool blue-gray Nord palette.
func nordTheme() Theme {
	return Theme{
		Name:       "nord",
		Background: "#2e3440",
		Foreground: "#d8dee9",
		Dim:        "#616e88",
		Accent:     "#88c0d0",

		Border:      "#4c566a",
		BorderFocus: "#88c0d0",
		Title:       "#eceff4",

		Price:      "#ebcb8b",
		InStock:    "#a3be8c",
		OutOfStock: "#bf616a",
		Err:        "#bf616a",

		SearchHighlight: "#ebcb8b",
		HelpKey:         "#88c0d0",
		HelpDesc:        "#616e88",
	}
}

// monoTheme is a grayscale theme for limited terminals.
func monoTheme() Theme {
	return Theme{
		Name:       "mono",
		Background: "#000000",
		Foreground: "#c0c0c0",
		Dim:        "#707070",
		Accent:     "#ffffff",

		Border:      "#505050",
		BorderFocus: "#ffffff",
		Title:       "#ffffff",

		Price:      "#e0e0e0",
		InStock:    "#c0c0c0",
		OutOfStock: "#707070",
		Err:        "#ffffff",

		SearchHighlight: "#ffffff",
		HelpKey:         "#ffffff",
		HelpDesc:        "#707070",
	}
}
