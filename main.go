package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hotel-ledger/config"
	"hotel-ledger/controllers"
	"hotel-ledger/routes"
	"hotel-ledger/services"
	"hotel-ledger/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	logger.Info("database connection established, migrations applied")

	tokens := utils.NewTokenManager(settings.JWTSecret, settings.JWTTTLHours)

	authService := services.NewAuthService(db, tokens, settings.AllowRegister)
	hotelService := services.NewHotelService(db)
	roomService := services.NewRoomService(db)
	stayService := services.NewStayService(db)
	paymentService := services.NewPaymentService(db)
	expenseService := services.NewExpenseService(db)
	transferService := services.NewTransferService(db)
	reportService := services.NewReportService(db)
	closingService := services.NewMonthClosingService(db, reportService)
	userService := services.NewUserService(db)
	methodService := services.NewCustomMethodService(db)

	router := routes.SetupRouter(settings, tokens, logger, routes.Controllers{
		Auth:          controllers.NewAuthController(authService),
		Hotels:        controllers.NewHotelController(hotelService),
		Rooms:         controllers.NewRoomController(roomService),
		Stays:         controllers.NewStayController(stayService),
		Payments:      controllers.NewPaymentController(paymentService),
		Expenses:      controllers.NewExpenseController(expenseService),
		Transfers:     controllers.NewTransferController(transferService),
		Reports:       controllers.NewReportController(reportService),
		Closings:      controllers.NewMonthClosingController(closingService),
		Users:         controllers.NewUserController(userService),
		CustomMethods: controllers.NewCustomMethodController(methodService),
	})

	addr := ":" + settings.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server stopped gracefully")
}
