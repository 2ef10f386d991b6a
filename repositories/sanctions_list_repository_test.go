package repositories

import (
	"context"
	"net/http"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corrisk/riskline/infra"
)

func TestFetchSanctionsList(t *testing.T) {
	defer gock.Off()

	gock.New("https://sanctions.test").
		Get("/sdn.csv").
		Reply(http.StatusOK).
		BodyString("Acme Corp Holdings,12345,OFAC\nGLOBEX INTERNATIONAL,67890,OFAC\n")

	repo := SanctionsListRepository{sanctionsList: infra.InitializeSanctionsList("https://sanctions.test/sdn.csv")}

	list, err := repo.FetchSanctionsList(context.Background())
	require.NoError(t, err)

	require.Len(t, list.Rows, 2)
	assert.Equal(t, []string{"Acme Corp Holdings", "12345", "OFAC"}, list.Rows[0])
	assert.True(t, list.Matches("acme corp"))
	assert.False(t, list.Matches("Initech"))
}

func TestFetchSanctionsListHttpError(t *testing.T) {
	defer gock.Off()

	gock.New("https://sanctions.test").
		Get("/sdn.csv").
		Reply(http.StatusInternalServerError)

	repo := SanctionsListRepository{sanctionsList: infra.InitializeSanctionsList("https://sanctions.test/sdn.csv")}

	_, err := repo.FetchSanctionsList(context.Background())
	assert.Error(t, err)
}
