package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/mverbeek/treestack/internal/export"
	"github.com/mverbeek/treestack/internal/geometry"
	presetimporter "github.com/mverbeek/treestack/internal/importer"
	"github.com/mverbeek/treestack/internal/model"
	"github.com/mverbeek/treestack/internal/project"
	"github.com/mverbeek/treestack/internal/texture"
	"github.com/mverbeek/treestack/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window   fyne.Window
	config   model.AppConfig
	presets  model.PresetStore
	textures *texture.Cache
	history  *History
	tabs     *container.AppTabs

	// Current inputs and the calculation derived from them. The
	// calculation is replaced wholesale on every recalculation;
	// nothing holds a reference into an old one.
	stock       model.StockDimensions
	tree        model.TreeDimensions
	manualAngle *float64
	calc        model.TreeCalculation

	// Purchase estimate inputs
	kerfWidth     float64
	wastePercent  float64
	pricePerPiece float64

	// Set while programmatically updating widgets so their change
	// callbacks do not echo back into the inputs or the history.
	restoring bool

	// UI references for dynamic updates
	cutListContainer  *fyne.Container
	previewContainer  *fyne.Container
	purchaseContainer *fyne.Container
	angleEntry        *widget.Entry
	angleOverride     *widget.Check
	dimensionEntries  map[string]*widget.Entry
}

func NewApp(window fyne.Window) *App {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		config = model.DefaultAppConfig()
	}
	presets, err := project.LoadPresets(project.DefaultPresetsPath())
	if err != nil {
		presets = model.NewPresetStore()
	}

	return &App{
		window:           window,
		config:           config,
		presets:          presets,
		textures:         texture.NewCache(),
		history:          NewHistory(),
		stock:            config.Stock(),
		tree:             config.Tree(),
		kerfWidth:        config.DefaultKerfWidth,
		wastePercent:     config.DefaultWastePercent,
		dimensionEntries: make(map[string]*widget.Entry),
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Cut List PDF...", func() {
			a.exportWith("cut-list.pdf", func(path string) error {
				return export.ExportPDF(path, a.calc, a.stock, a.tree)
			})
		}),
		fyne.NewMenuItem("Export Layer Labels PDF...", func() {
			a.exportWith("layer-labels.pdf", func(path string) error {
				return export.ExportLabels(path, a.calc)
			})
		}),
		fyne.NewMenuItem("Export Excel Workbook...", func() {
			a.exportWith("cut-list.xlsx", func(path string) error {
				return export.ExportExcel(path, a.calc, a.stock)
			})
		}),
		fyne.NewMenuItem("Export DXF Profiles...", func() {
			a.exportWith("layer-profiles.dxf", func(path string) error {
				return export.ExportDXF(path, a.calc)
			})
		}),
		fyne.NewMenuItem("Export STL Model...", func() {
			a.exportWith("tree.stl", func(path string) error {
				mesh := geometry.BuildTreeModel(a.calc)
				return export.ExportSTL(path, mesh, "treestack")
			})
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Presets from CSV...", func() {
			a.importPresetsCSV()
		}),
		fyne.NewMenuItem("Import Presets from Excel...", func() {
			a.importPresetsExcel()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.redo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset Dimensions to Defaults", func() {
			a.pushHistory("Reset to Defaults")
			a.stock = model.DefaultStock()
			a.tree = model.DefaultTree()
			a.manualAngle = nil
			a.syncDimensionEntries()
			a.recalculate()
		}),
		fyne.NewMenuItem("Save Current as Defaults", func() {
			a.config.DefaultStockDepth = a.stock.Depth
			a.config.DefaultStockHeight = a.stock.Height
			a.config.DefaultStockLength = a.stock.Length
			a.config.DefaultBaseWidth = a.tree.BaseWidth
			a.config.DefaultTargetHeight = a.tree.TargetHeight
			a.config.DefaultKerfWidth = a.kerfWidth
			a.config.DefaultWastePercent = a.wastePercent
			if err := project.SaveAppConfig(project.DefaultConfigPath(), a.config); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			dialog.ShowInformation("Defaults Saved",
				"Current dimensions will be used the next time the app starts.", a.window)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export All Settings...", func() {
			a.exportBackup()
		}),
		fyne.NewMenuItem("Import All Settings...", func() {
			a.importBackup()
		}),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	mainMenu := fyne.NewMainMenu(
		fileMenu,
		editMenu,
		helpMenu,
	)
	a.window.SetMainMenu(mainMenu)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About TreeStack",
		"TreeStack — Layered Tree Planner\n\n"+
			"Calculates the cut list for a tapered Christmas tree\n"+
			"built from stacked lengths of wooden stock, and exports\n"+
			"plans as PDF, Excel, DXF and STL.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	dimensionsTab := container.NewTabItem("Dimensions", a.buildDimensionsPanel())
	cutListTab := container.NewTabItem("Cut List", a.buildCutListPanel())
	previewTab := container.NewTabItem("Preview", a.buildPreviewPanel())
	purchaseTab := container.NewTabItem("Purchase", a.buildPurchasePanel())

	a.tabs = container.NewAppTabs(dimensionsTab, cutListTab, previewTab, purchaseTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	a.recalculate()
	return a.tabs
}

// ─── Dimensions Panel ──────────────────────────────────────

// dimensionField binds an entry to one float input and recalculates on
// every valid edit.
func (a *App) dimensionField(key string, val *float64) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(fmt.Sprintf("%.0f", *val))
	e.OnChanged = func(text string) {
		if a.restoring {
			return
		}
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			*val = v
			a.recalculate()
		}
	}
	a.dimensionEntries[key] = e
	return e
}

func (a *App) syncDimensionEntries() {
	a.restoring = true
	defer func() { a.restoring = false }()

	set := func(key string, v float64) {
		if e, ok := a.dimensionEntries[key]; ok {
			e.SetText(fmt.Sprintf("%.0f", v))
		}
	}
	set("stock.depth", a.stock.Depth)
	set("stock.height", a.stock.Height)
	set("stock.length", a.stock.Length)
	set("tree.base", a.tree.BaseWidth)
	set("tree.height", a.tree.TargetHeight)
}

func (a *App) buildDimensionsPanel() fyne.CanvasObject {
	presetSelect := widget.NewSelect(a.presets.Names(), func(selected string) {
		p := a.presets.FindByName(selected)
		if p == nil {
			return
		}
		a.pushHistory("Apply Preset")
		a.stock = p.Dimensions()
		if p.PricePerPiece > 0 {
			a.pricePerPiece = p.PricePerPiece
		}
		a.syncDimensionEntries()
		a.recalculate()
	})
	presetSelect.PlaceHolder = "Select a stock preset..."

	stockSection := widget.NewCard("Stock", "One piece of timber as sold", container.NewGridWithColumns(2,
		widget.NewLabel("Preset"), presetSelect,
		widget.NewLabel("Depth (mm)"), a.dimensionField("stock.depth", &a.stock.Depth),
		widget.NewLabel("Thickness (mm)"), a.dimensionField("stock.height", &a.stock.Height),
		widget.NewLabel("Length (mm)"), a.dimensionField("stock.length", &a.stock.Length),
	))

	treeSection := widget.NewCard("Tree", "Target silhouette", container.NewGridWithColumns(2,
		widget.NewLabel("Base Width (mm)"), a.dimensionField("tree.base", &a.tree.BaseWidth),
		widget.NewLabel("Target Height (mm)"), a.dimensionField("tree.height", &a.tree.TargetHeight),
	))

	a.angleEntry = widget.NewEntry()
	a.angleEntry.SetPlaceHolder("Degrees from horizontal")
	a.angleEntry.Disable()
	a.angleEntry.OnChanged = func(text string) {
		if a.restoring || a.angleOverride == nil || !a.angleOverride.Checked {
			return
		}
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			a.manualAngle = &v
			a.recalculate()
		}
	}

	a.angleOverride = widget.NewCheck("Override cut angle", func(on bool) {
		if a.restoring {
			return
		}
		a.pushHistory("Toggle Angle Override")
		if on {
			a.angleEntry.Enable()
			a.angleEntry.SetText(fmt.Sprintf("%.1f", a.calc.CutAngle))
		} else {
			a.angleEntry.Disable()
			a.manualAngle = nil
			a.recalculate()
		}
	})

	angleSection := widget.NewCard("Cut Angle", "Lengths stay matched to the silhouette", container.NewGridWithColumns(2,
		a.angleOverride, a.angleEntry,
	))

	return container.NewVScroll(container.NewVBox(
		stockSection,
		treeSection,
		angleSection,
	))
}

// ─── Cut List Panel ────────────────────────────────────────

func (a *App) buildCutListPanel() fyne.CanvasObject {
	a.cutListContainer = container.NewVBox()
	a.refreshCutList()

	exportBtn := newIconButtonWithTooltip(theme.DocumentSaveIcon(), "Export cut list as PDF", func() {
		a.exportWith("cut-list.pdf", func(path string) error {
			return export.ExportPDF(path, a.calc, a.stock, a.tree)
		})
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Layers, bottom to top", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			exportBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.cutListContainer),
	)
}

func (a *App) refreshCutList() {
	a.cutListContainer.RemoveAll()

	if len(a.calc.Pieces) == 0 && a.calc.StarPlatform == nil {
		a.cutListContainer.Add(widget.NewLabel("No layers. Check the dimensions tab."))
		return
	}

	header := container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("Layer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Length (mm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Angle", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Section (mm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Note", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	a.cutListContainer.Add(header)
	a.cutListContainer.Add(widget.NewSeparator())

	addRow := func(p model.TreePiece, note string) {
		a.cutListContainer.Add(container.NewGridWithColumns(5,
			widget.NewLabel(fmt.Sprintf("%d", p.LayerNumber+1)),
			widget.NewLabel(fmt.Sprintf("%.1f", p.Length)),
			widget.NewLabel(fmt.Sprintf("%.1f°", p.CutAngle)),
			widget.NewLabel(fmt.Sprintf("%.0f x %.0f", p.Depth, p.Height)),
			widget.NewLabel(note),
		))
	}

	for _, p := range a.calc.Pieces {
		addRow(p, "")
	}
	if a.calc.StarPlatform != nil {
		addRow(*a.calc.StarPlatform, "topper platform")
	}
}

// ─── Preview Panel ─────────────────────────────────────────

func (a *App) buildPreviewPanel() fyne.CanvasObject {
	a.previewContainer = container.NewStack(
		widget.NewLabel("No preview yet."),
	)
	return a.previewContainer
}

func (a *App) refreshPreview() {
	a.previewContainer.RemoveAll()
	a.previewContainer.Add(widgets.RenderCalculationView(a.calc, a.textures))
	a.previewContainer.Refresh()
}

// ─── Purchase Panel ────────────────────────────────────────

func (a *App) buildPurchasePanel() fyne.CanvasObject {
	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.1f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
				a.refreshPurchase()
			}
		}
		return e
	}

	inputs := widget.NewCard("Purchase Settings", "", container.NewGridWithColumns(2,
		widget.NewLabel("Saw Kerf (mm)"), floatEntry(&a.kerfWidth),
		widget.NewLabel("Waste (%)"), floatEntry(&a.wastePercent),
		widget.NewLabel("Price per Piece"), floatEntry(&a.pricePerPiece),
	))

	a.purchaseContainer = container.NewVBox()
	a.refreshPurchase()

	return container.NewVScroll(container.NewVBox(
		inputs,
		a.purchaseContainer,
	))
}

func (a *App) refreshPurchase() {
	if a.purchaseContainer == nil {
		return
	}
	a.purchaseContainer.RemoveAll()

	est := model.CalculatePurchaseEstimate(a.calc, a.stock, a.kerfWidth, a.wastePercent, a.pricePerPiece)

	lines := widgets.RenderSummaryLines(a.calc)
	lines = append(lines,
		fmt.Sprintf("With kerf allowance: %.2f m", est.TotalLinearMM/1000),
		fmt.Sprintf("Minimum pieces: %d", est.PiecesMin),
		fmt.Sprintf("Recommended with %.0f%% waste: %d", est.WastePercent, est.PiecesWithWaste),
	)
	if est.PricePerPiece > 0 {
		lines = append(lines, fmt.Sprintf("Estimated cost: %.2f", est.EstimatedCost))
	}

	for _, line := range lines {
		a.purchaseContainer.Add(widget.NewLabel(line))
	}
	if a.calc.HasWarnings() {
		a.purchaseContainer.Add(widget.NewSeparator())
		for _, w := range a.calc.Warnings {
			warn := widget.NewLabel("WARNING: " + w)
			warn.Importance = widget.DangerImportance
			a.purchaseContainer.Add(warn)
		}
	}
	a.purchaseContainer.Refresh()
}

// ─── Actions ───────────────────────────────────────────────

// recalculate validates the current inputs and replaces the active
// calculation. Invalid inputs leave the previous calculation in place.
func (a *App) recalculate() {
	if err := model.ValidateInputs(a.stock, a.tree, a.manualAngle); err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	a.calc = model.Calculate(a.stock, a.tree, a.manualAngle)

	if a.cutListContainer != nil {
		a.refreshCutList()
	}
	if a.previewContainer != nil {
		a.refreshPreview()
	}
	a.refreshPurchase()
}

func (a *App) pushHistory(label string) {
	if a.restoring {
		return
	}
	a.history.Push(MakeSnapshot(a.stock, a.tree, a.manualAngle, label))
}

// restoreSnapshot applies a snapshot to the live inputs and refreshes
// every panel.
func (a *App) restoreSnapshot(s Snapshot) {
	a.stock = s.Stock
	a.tree = s.Tree
	a.manualAngle = s.ManualAngle
	a.syncDimensionEntries()

	a.restoring = true
	if a.angleOverride != nil {
		a.angleOverride.SetChecked(s.ManualAngle != nil)
	}
	if a.angleEntry != nil {
		if s.ManualAngle != nil {
			a.angleEntry.SetText(fmt.Sprintf("%.1f", *s.ManualAngle))
			a.angleEntry.Enable()
		} else {
			a.angleEntry.SetText("")
			a.angleEntry.Disable()
		}
	}
	a.restoring = false

	a.recalculate()
}

func (a *App) undo() {
	if !a.history.CanUndo() {
		return
	}
	current := MakeSnapshot(a.stock, a.tree, a.manualAngle, "current")
	if snap, ok := a.history.Undo(current); ok {
		a.restoreSnapshot(snap)
	}
}

func (a *App) redo() {
	if !a.history.CanRedo() {
		return
	}
	current := MakeSnapshot(a.stock, a.tree, a.manualAngle, "current")
	if snap, ok := a.history.Redo(current); ok {
		a.restoreSnapshot(snap)
	}
}

func (a *App) exportBackup() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := project.ExportAllData(writer.URI().Path(), a.config, a.presets); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName("treestack-settings.json")
	d.Show()
}

func (a *App) importBackup() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		backup, err := project.ImportAllData(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		a.pushHistory("Import Settings")
		a.config = backup.Config
		a.presets = model.PresetStore{Presets: backup.Presets}
		a.stock = a.config.Stock()
		a.tree = a.config.Tree()
		a.kerfWidth = a.config.DefaultKerfWidth
		a.wastePercent = a.config.DefaultWastePercent
		a.syncDimensionEntries()
		a.recalculate()

		if err := project.SaveAppConfig(project.DefaultConfigPath(), a.config); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if err := project.SavePresets(project.DefaultPresetsPath(), a.presets); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Imported settings and %d presets.", len(backup.Presets)), a.window)
	}, a.window)
}

func (a *App) exportWith(defaultName string, write func(path string) error) {
	if len(a.calc.Pieces) == 0 && a.calc.StarPlatform == nil {
		dialog.ShowInformation("Nothing to export", "Calculate a tree first.", a.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := write(path); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

// ─── Import Functions ───────────────────────────────────────

func (a *App) importPresetsCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := presetimporter.ImportCSV(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) importPresetsExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := presetimporter.ImportExcel(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) handleImportResult(result presetimporter.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("Import warnings: %v\n", result.Warnings)
	}

	if len(result.Presets) > 0 {
		for _, p := range result.Presets {
			a.presets.Add(p)
		}
		if err := project.SavePresets(project.DefaultPresetsPath(), a.presets); err != nil {
			dialog.ShowError(err, a.window)
		}

		msg := fmt.Sprintf("Successfully imported %d presets.", len(result.Presets))
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}

// Config exposes the loaded preferences so main can pick the theme
// variant before the window shows.
func (a *App) Config() model.AppConfig { return a.config }
