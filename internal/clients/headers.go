package clients

import (
	"net/http"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
)

// HeaderToken is the commerce backend's session token header.
const HeaderToken = "token"

func setHeaders(req *http.Request, session models.Session) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if session.Token != "" {
		req.Header.Set(HeaderToken, session.Token)
	}
}
