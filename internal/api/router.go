package api

import (
	"net/http"

	"github.com/slah225682-coder/bottube/internal/client"
	"github.com/slah225682-coder/bottube/internal/config"
	"github.com/slah225682-coder/bottube/internal/handler"
	"github.com/slah225682-coder/bottube/wallet"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers over the given wallet store
func SetupRouter(store *wallet.Store) (http.Handler, error) {
	walletHandler := handler.NewWalletHandler(store)
	transferHandler := handler.NewTransferHandler(
		store,
		client.NewLedgerClient(),
		client.NewRatesClient(),
		config.GetPayCooldown(),
	)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallet", walletHandler.Status)
	mux.HandleFunc("/wallet/generate", walletHandler.Generate)
	mux.HandleFunc("/wallet/import", walletHandler.Import)
	mux.HandleFunc("/wallet/clear", walletHandler.Clear)

	// Transfer endpoints
	mux.HandleFunc("/transfer/sign", transferHandler.Sign)
	mux.HandleFunc("/transfer/send", transferHandler.Send)
	mux.HandleFunc("/balance", transferHandler.Balance)
	mux.HandleFunc("/rate", transferHandler.Rate)

	return mux, nil
}
