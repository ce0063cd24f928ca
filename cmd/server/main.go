package main

import (
	"context"
	"flag"
	"log"

	"github.com/macosusesdk/automationd/internal/appstate"
	"github.com/macosusesdk/automationd/internal/clipboard"
	"github.com/macosusesdk/automationd/internal/config"
	"github.com/macosusesdk/automationd/internal/elements"
	"github.com/macosusesdk/automationd/internal/filedialog"
	"github.com/macosusesdk/automationd/internal/macros"
	"github.com/macosusesdk/automationd/internal/observation"
	"github.com/macosusesdk/automationd/internal/operations"
	"github.com/macosusesdk/automationd/internal/platform"
	"github.com/macosusesdk/automationd/internal/screenshot"
	"github.com/macosusesdk/automationd/internal/scripts"
	"github.com/macosusesdk/automationd/internal/server"
	"github.com/macosusesdk/automationd/internal/service"
	"github.com/macosusesdk/automationd/internal/sessions"
	"github.com/macosusesdk/automationd/internal/windows"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	log.Println("starting automationd...")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	sys, err := platform.New()
	if err != nil {
		log.Fatalf("platform adapter: %v", err)
	}
	if err := sys.CheckAccessibilityPermission(context.Background()); err != nil {
		log.Printf("accessibility permission not granted yet: %v", err)
	}

	apps := appstate.NewStore()
	ops := operations.NewStore()
	els := elements.NewRegistry()
	winReg := windows.NewRegistry(sys)
	winSvc := windows.NewService(sys, winReg)
	obs := observation.NewManager(sys)
	sess := sessions.NewManager()
	macroReg := macros.NewRegistry()
	executor := macros.NewExecutor(sys, els)
	clip := clipboard.NewManager(sys)

	svc := service.New(service.Deps{
		Sys:         sys,
		Apps:        apps,
		Ops:         ops,
		Windows:     winSvc,
		Elements:    els,
		Observation: obs,
		Sessions:    sess,
		Macros:      macroReg,
		Executor:    executor,
		Clipboard:   clip,
		Screenshots: screenshot.NewService(sys, els),
		Scripts:     scripts.NewExecutor(sys),
		Dialogs:     filedialog.NewService(sys, els),
	})

	srv := server.New(cfg, svc, service.NewOperationsService(ops),
		els.RunReaper,
		sess.RunReaper,
	)
	if err := srv.Run(context.Background()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
	log.Println("automationd stopped")
}
