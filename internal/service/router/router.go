package router

import (
	"net/http"

	admin "roulette_webapp/internal/admin/controller"
	auth "roulette_webapp/internal/auth/controller"
	game "roulette_webapp/internal/game/controller"

	"github.com/gorilla/mux"
)

func SetUpRoutes(authHandler *auth.AuthHandler, gameHandler *game.GameHandler, adminHandler *admin.AdminHandler, staticDir string) *mux.Router {
	router := mux.NewRouter()
	api := "/api"

	router.HandleFunc(api+"/user/profile", authHandler.GetProfile).Methods("GET")          // Auth or register user, return profile
	router.HandleFunc(api+"/user/spin", gameHandler.Spin).Methods("POST")                  // Execute a wheel spin
	router.HandleFunc(api+"/user/inventory", gameHandler.GetInventory).Methods("GET")      // List rewards, newest first
	router.HandleFunc(api+"/user/claim/{itemId}", gameHandler.ClaimItem).Methods("POST")   // Claim a star reward

	router.HandleFunc(api+"/admin/login", adminHandler.Login).Methods("POST")
	router.HandleFunc(api+"/admin/users", adminHandler.ListUsers).Methods("GET")
	router.HandleFunc(api+"/admin/users/{userId}", adminHandler.UpdateUser).Methods("PUT")
	router.HandleFunc(api+"/admin/users/{userId}/inventory/{itemId}", adminHandler.DeleteInventoryItem).Methods("DELETE")
	router.HandleFunc(api+"/admin/stats", adminHandler.GetStats).Methods("GET")

	if staticDir != "" {
		fileServer := http.FileServer(http.Dir(staticDir))
		router.PathPrefix("/roulette/").Handler(http.StripPrefix("/roulette/", fileServer))
		router.PathPrefix("/admin/").Handler(http.StripPrefix("/admin/", fileServer))
	}

	return router
}
