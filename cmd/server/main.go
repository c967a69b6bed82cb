package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"arborlog/config"
	"arborlog/database"
	"arborlog/router"

	"arborlog/pkg/ai"
	"arborlog/pkg/capture"

	exportCtrlImp "arborlog/pkg/export/controllerImp"
	healthCtrlImp "arborlog/pkg/health/controllerImp"
	treeCtrlImp "arborlog/pkg/tree/controllerImp"
	treeRepoImp "arborlog/pkg/tree/repositoryImp"
	treeSvcImp "arborlog/pkg/tree/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Record store — load the saved collection before anything can mutate
	repo := treeRepoImp.New(db)
	store := treeSvcImp.New(repo)
	if err := store.Load(); err != nil {
		log.Fatalf("load records: %v", err)
	}
	log.Printf("[store] loaded %d record(s)", store.Count())

	// 4) LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		llm = ai.NewMock()
	}

	// 5) Controllers
	tCtrl := treeCtrlImp.New(store, llm, capture.DataURIPhotoSource{})
	eCtrl := exportCtrlImp.New(store)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Echo + routes
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	r := router.New(e, tCtrl, eCtrl, hCtrl)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
