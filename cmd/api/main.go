package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "sacco-backoffice/internal/adapter/http"
	"sacco-backoffice/internal/adapter/middleware"
	"sacco-backoffice/internal/adapter/repository/mysql"
	"sacco-backoffice/internal/config"
	"sacco-backoffice/internal/infrastructure/cache"
	"sacco-backoffice/internal/infrastructure/db"
	"sacco-backoffice/internal/notify"
	"sacco-backoffice/internal/usecase/application"
	"sacco-backoffice/internal/usecase/capacity"
	"sacco-backoffice/internal/usecase/guarantee"
	"sacco-backoffice/internal/usecase/guarantorprofile"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), log)
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	var notifier notify.Notifier = notify.Nop{}
	if cfg.SMTPHost != "" {
		notifier = notify.NewEmailSender(cfg, log)
	}

	u := mysql.NewGormUoW(gdb)
	ledger := capacity.NewLedger(log)

	appUC := application.NewUsecase(u, ledger, notifier, log)
	pledgeUC := guarantee.NewUsecase(u, ledger, notifier, log, uint(cfg.MaxActiveGuarantees))
	guarantorUC := guarantorprofile.NewUsecase(u, log, cfg.MemberTenureMonths, uint(cfg.MaxActiveGuarantees))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	httpadp.Register(e,
		httpadp.NewHandler(),
		httpadp.NewApplicationHandler(appUC),
		httpadp.NewGuaranteeHandler(pledgeUC),
		httpadp.NewGuarantorHandler(guarantorUC),
	)

	addr := ":" + cfg.AppPort
	log.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
