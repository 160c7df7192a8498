// TreeStack — Layered Tree Planner
//
// A cross-platform desktop application for planning a tapered wooden
// Christmas tree built from stacked timber layers, with cut lists,
// purchase estimates and PDF/Excel/DXF/STL export.
//
// Build:
//   go build -o treestack ./cmd/treestack
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o treestack.exe ./cmd/treestack
//   GOOS=darwin  GOARCH=amd64 go build -o treestack-darwin ./cmd/treestack
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"github.com/mverbeek/treestack/internal/ui"
)

func main() {
	application := app.NewWithID("com.mverbeek.treestack")
	window := application.NewWindow("TreeStack — Layered Tree Planner")

	appUI := ui.NewApp(window)

	appTheme := ui.NewTreeStackTheme()
	switch appUI.Config().Theme {
	case "light":
		appTheme.SetVariant(theme.VariantLight)
	case "dark":
		appTheme.SetVariant(theme.VariantDark)
	}
	application.Settings().SetTheme(appTheme)

	appUI.SetupMenus() // Setup the native menu bar
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1000, 700))
	window.CenterOnScreen()
	window.ShowAndRun()
}
