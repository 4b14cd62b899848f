//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/melvan27/GrubDash/test/pact"

	"github.com/melvan27/GrubDash/internal/app/api"
	"github.com/melvan27/GrubDash/internal/platform/seed"
	"github.com/melvan27/GrubDash/internal/shared/payload"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestGrubDashProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	withFixtures := func(fixtures *seed.Fixtures) models.StateHandler {
		return func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.Reset()
			if setup {
				return nil, app.Seed(context.Background(), fixtures)
			}
			return nil, nil
		}
	}
	dish := payload.Payload(pacttest.ExampleDish())

	verifier := pactprovider.NewVerifier()
	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers: models.StateHandlers{
			pacttest.StateMenuBaseline: withFixtures(nil),
			pacttest.StateDishMissing:  withFixtures(nil),
			pacttest.StateDishExists: withFixtures(&seed.Fixtures{
				Dishes: []payload.Payload{dish},
			}),
			pacttest.StatePendingOrder: withFixtures(&seed.Fixtures{
				Dishes: []payload.Payload{dish},
				Orders: []payload.Payload{pacttest.ExampleOrder(pacttest.PendingOrderID, "pending")},
			}),
			pacttest.StateDeliveringOrder: withFixtures(&seed.Fixtures{
				Dishes: []payload.Payload{dish},
				Orders: []payload.Payload{pacttest.ExampleOrder(pacttest.DeliveringOrderID, "out-for-delivery")},
			}),
		},
		BeforeEach: func() error {
			app.Reset()
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	*api.App
	server *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	app := api.NewApp()
	server := httptest.NewServer(app.Router(nil))
	t.Cleanup(server.Close)

	return &contractProviderApp{App: app, server: server}
}
