// @title           RTC Local Wallet API
// @version         1.0
// @description     Local custody wallet for RTC: seed management, transfer signing and submission.
// @BasePath        /
package main

import (
	"log"
	"net/http"

	"github.com/slah225682-coder/bottube/internal/api"
	"github.com/slah225682-coder/bottube/internal/config"
	"github.com/slah225682-coder/bottube/internal/storage"
	"github.com/slah225682-coder/bottube/wallet"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatalf("config: %v", err)
	}

	var seedStorage wallet.SeedStorage
	if config.IsWalletEphemeral() {
		log.Println("running with ephemeral in-memory wallet storage")
		seedStorage = storage.NewMemoryStore()
	} else {
		if err := config.PromptForPassword(); err != nil {
			log.Fatalf("password: %v", err)
		}
		password, err := config.GetWalletPasswordBytes()
		if err != nil {
			log.Fatalf("password: %v", err)
		}
		seedStorage = storage.NewFileStore(config.GetWalletFilePath(), password)
		clear(password)
	}

	store := wallet.NewStore(seedStorage)

	router, err := api.SetupRouter(store)
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	addr := ":" + config.GetPort()
	log.Printf("walletd listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server: %v", err)
	}
}
