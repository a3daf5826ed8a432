package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	checklistinadapter "gateprep/internal/modules/checklist/adapter/in"
	checklistoutadapter "gateprep/internal/modules/checklist/adapter/out"
	checklistservice "gateprep/internal/modules/checklist/service"
	checklistusecase "gateprep/internal/modules/checklist/usecase"
	plannerinadapter "gateprep/internal/modules/planner/adapter/in"
	plannerusecase "gateprep/internal/modules/planner/usecase"
	studytimeinadapter "gateprep/internal/modules/studytime/adapter/in"
	studytimeoutadapter "gateprep/internal/modules/studytime/adapter/out"
	studytimeservice "gateprep/internal/modules/studytime/service"
	studytimeusecase "gateprep/internal/modules/studytime/usecase"
	syllabusinadapter "gateprep/internal/modules/syllabus/adapter/in"
	syllabusoutadapter "gateprep/internal/modules/syllabus/adapter/out"
	syllabusdomain "gateprep/internal/modules/syllabus/domain"
	syllabusservice "gateprep/internal/modules/syllabus/service"
	syllabususecase "gateprep/internal/modules/syllabus/usecase"
	timelineinadapter "gateprep/internal/modules/timeline/adapter/in"
	timelineusecase "gateprep/internal/modules/timeline/usecase"
	"gateprep/internal/platform/clock"
	"gateprep/internal/platform/config"
	"gateprep/internal/platform/id"
	"gateprep/internal/platform/kv"
	uiapp "gateprep/internal/ui/app"
)

type App struct {
	SyllabusCLI  syllabusinadapter.CLIHandler
	StudyCLI     studytimeinadapter.CLIHandler
	StudyTUI     studytimeinadapter.TUIHandler
	ChecklistCLI checklistinadapter.CLIHandler
	PlannerCLI   plannerinadapter.CLIHandler
	TimelineCLI  timelineinadapter.CLIHandler

	clock clock.Clock
	store *kv.SQLiteStore
	log   hclog.Logger
}

func New(cfg config.Config, log hclog.Logger) (*App, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	clk := clock.SystemClock{}

	store, err := kv.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	syllabusUC := syllabususecase.NewInteractor(syllabusservice.NewSyllabusService(
		syllabusoutadapter.NewEmbeddedCatalogSource(),
		syllabusoutadapter.NewKVModeStore(store),
		syllabusdomain.Mode(cfg.DefaultMode),
		log.Named("syllabus"),
	))

	studyUC := studytimeusecase.NewInteractor(
		studytimeservice.NewTimeService(clk, id.UUID{}, studytimeoutadapter.NewKVRecordStore(store), log.Named("studytime")),
		studytimeoutadapter.NewKVActiveSessionStore(store),
	)

	checklistUC := checklistusecase.NewInteractor(
		checklistservice.NewChecklistService(checklistoutadapter.NewKVStateStore(store), log.Named("checklist")),
		syllabusUC,
	)

	plannerUC := plannerusecase.NewInteractor(syllabusUC, log.Named("planner"))
	timelineUC := timelineusecase.NewInteractor(clk)

	log.Debug("state db ready", "path", cfg.DBPath)

	return &App{
		SyllabusCLI:  syllabusinadapter.NewCLIHandler(syllabusUC),
		StudyCLI:     studytimeinadapter.NewCLIHandler(studyUC),
		StudyTUI:     studytimeinadapter.NewTUIHandler(studyUC),
		ChecklistCLI: checklistinadapter.NewCLIHandler(checklistUC),
		PlannerCLI:   plannerinadapter.NewCLIHandler(plannerUC),
		TimelineCLI:  timelineinadapter.NewCLIHandler(timelineUC),
		clock:        clk,
		store:        store,
		log:          log,
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

// RunTUI runs the dashboard until the user quits. A session still running
// at exit is credited before returning.
func RunTUI(cfg config.Config, app *App) error {
	model := uiapp.NewModel(cfg.TickInterval, app.StudyTUI, app.ChecklistCLI, app.PlannerCLI, app.TimelineCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := program.Run()

	out, err := app.StudyTUI.Flush(context.Background())
	if err != nil {
		app.log.Warn("flush on exit failed", "error", err)
	} else if out.Paused {
		app.log.Info("credited running session on exit", "seconds", out.Credited, "day", out.DayKey)
	}
	return runErr
}
