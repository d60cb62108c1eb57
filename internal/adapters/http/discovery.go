package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkeye/callfocus/internal/domain"
)

// TransportTypeLiveKit is the focus type Matrix clients treat as an SFU.
const TransportTypeLiveKit = "livekit"

type transport struct {
	Type              string `json:"type"`
	LiveKitServiceURL string `json:"livekit_service_url"`
}

type transportsResponse struct {
	Transports []transport `json:"transports"`
}

// discoveryHandler advertises the token endpoint as a call focus. An empty
// list lets clients fall back to peer-to-peer calls. No authentication.
func discoveryHandler(callConfig *domain.CallConfig, serviceURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := transportsResponse{Transports: []transport{}}
		if callConfig != nil {
			resp.Transports = append(resp.Transports, transport{
				Type:              TransportTypeLiveKit,
				LiveKitServiceURL: serviceURL + TokenPath,
			})
		}
		c.JSON(http.StatusOK, resp)
	}
}
