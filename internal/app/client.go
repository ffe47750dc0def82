package app

import (
	"fmt"

	"github.com/Adda-Baaj/spacetraders-go/internal/config"
	"github.com/Adda-Baaj/spacetraders-go/internal/logger"
	"github.com/Adda-Baaj/spacetraders-go/pkg/fetcher"
	"github.com/Adda-Baaj/spacetraders-go/pkg/httpclient"
	"github.com/Adda-Baaj/spacetraders-go/pkg/spacetraders"
)

// NewAPIClient builds a SpaceTraders client from config: resty transport with
// bearer auth, a typed executor and the endpoint client on top.
func NewAPIClient(cfg *config.Config, log logger.Logger) (*spacetraders.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	transport := httpclient.NewRestyClient(cfg.HTTPTimeout,
		httpclient.WithAuthToken(cfg.APIToken),
		httpclient.WithUserAgent(cfg.AppName),
	)
	exec, err := fetcher.New(cfg.APIURL, transport, fetcher.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("init executor: %w", err)
	}
	return spacetraders.NewClient(exec)
}
