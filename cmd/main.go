package main

import (
	"github.com/OtaoDavis/Tfit-app/config"
	"github.com/OtaoDavis/Tfit-app/controllers"
	"github.com/OtaoDavis/Tfit-app/routes"
	"github.com/OtaoDavis/Tfit-app/services"
	"github.com/OtaoDavis/Tfit-app/utils"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	defer config.Log.Sync()

	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB, config.Log)
	if err != nil {
		config.Log.Warn("push notifications disabled", zap.Error(err))
		push = nil
	}

	substrate := services.NewGormSubstrate(config.DB)
	prefs := services.NewGoalPrefs(substrate, config.Log)
	store := services.NewLedgerStore(substrate, prefs, config.Log)

	alerts := services.NewAlertService(config.DB, hub, push, config.Log)
	tracker := services.NewTrackerService(store, prefs, alerts, config.Log)
	history := services.NewHistoryService(store)
	scan := services.NewScanService()
	chat := services.NewChatService(config.DB, hub)
	stress := services.NewStressService(config.DB)
	habits := services.NewHabitService(config.DB)

	r := routes.SetupRouter(routes.Controllers{
		Tracker: controllers.NewTrackerController(tracker, history, prefs),
		Meals:   controllers.NewMealController(tracker, history, scan),
		Habits:  controllers.NewHabitController(habits),
		Stress:  controllers.NewStressController(stress),
		Chat:    controllers.NewChatController(hub, chat),
		Devices: controllers.NewDeviceController(push),
	})

	if err := r.Run(":8080"); err != nil {
		config.Log.Fatal("server exited", zap.Error(err))
	}
}
