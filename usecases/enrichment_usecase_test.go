package usecases

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corrisk/riskline/infra"
	"github.com/corrisk/riskline/repositories"
)

func newTestUsecase(t *testing.T, companiesCsv string) (EnrichmentUsecase, string, string) {
	t.Helper()

	dir := t.TempDir()
	companyListFile := filepath.Join(dir, "companies.csv")
	outputCsvFile := filepath.Join(dir, "enriched.csv")
	outputReportFile := filepath.Join(dir, "risk_report.txt")
	require.NoError(t, os.WriteFile(companyListFile, []byte(companiesCsv), 0o644))

	uc := Usecases{
		Repositories: repositories.NewRepositories(
			infra.InitializeSayari("https://sayari.test", "id", "secret"),
			infra.InitializeSanctionsList("https://sanctions.test/sdn.csv"),
			infra.InitializeWorldBank("https://indicators.test"),
			infra.InitializeGeocoding("https://geocode.test", "test-key"),
		),
		Config: Configuration{
			CompanyListFile:  companyListFile,
			OutputCsvFile:    outputCsvFile,
			OutputReportFile: outputReportFile,
		},
	}

	return uc.NewEnrichmentUsecase(), outputCsvFile, outputReportFile
}

func mockToken() {
	gock.New("https://sayari.test").
		Post("/oauth/token").
		Persist().
		Reply(http.StatusOK).
		JSON(map[string]any{
			"access_token": "test-token",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
}

func mockSanctions(body string) {
	gock.New("https://sanctions.test").
		Get("/sdn.csv").
		Reply(http.StatusOK).
		BodyString(body)
}

func TestEnrichCompaniesEndToEnd(t *testing.T) {
	defer gock.Off()

	mockToken()
	mockSanctions("Evil Corp,123,OFAC\n")

	// company A resolves fully
	gock.New("https://sayari.test").
		Get("/v1/search/entity").
		MatchParam("q", "Acme Corp").
		Reply(http.StatusOK).
		JSON(map[string]any{
			"data": []map[string]any{{
				"label":     "ACME CORP LTD",
				"countries": []string{"USA"},
				"risk": map[string]any{
					"risk_score": map[string]any{"value": 7.2, "level": "high"},
					"basel_aml":  map[string]any{"value": 6, "level": "relevant"},
					"cpi_score":  map[string]any{"value": 44, "level": "relevant"},
				},
				"adverse_media": []any{},
			}},
		})
	gock.New("https://geocode.test").
		Get("/v1/forward").
		MatchParam("query", "Acme Corp").
		Reply(http.StatusOK).
		JSON(map[string]any{
			"data": []map[string]any{{"latitude": 40.7128, "longitude": -74.006}},
		})
	gock.New("https://indicators.test").
		Get("/v2/country/USA/indicator/CC.PER.RNK").
		Reply(http.StatusOK).
		BodyString(`[{"page":1},[{"value":88.2}]]`)

	// company B's entity lookup fails outright
	gock.New("https://sayari.test").
		Get("/v1/search/entity").
		MatchParam("q", "Globex").
		Reply(http.StatusInternalServerError)
	gock.New("https://geocode.test").
		Get("/v1/forward").
		MatchParam("query", "Globex").
		Reply(http.StatusOK).
		JSON(map[string]any{"data": []any{}})

	uc, outputCsvFile, outputReportFile := newTestUsecase(t, "name\nAcme Corp\nGlobex\n")

	summary, err := uc.EnrichCompanies(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalCompanies)
	assert.Equal(t, 1, summary.HighRiskCount)
	assert.Equal(t, 0, summary.SanctionedCount)
	// A has explicitly zero mentions, B has unknown mentions
	assert.Equal(t, 2, summary.NoMediaMentionsCount)

	csvContent, err := os.ReadFile(outputCsvFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(csvContent), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t,
		"Company Name, Sayari Entity Name, Sayari Risk Score, AML Risk Score, CPI Risk Score, Negative Media Mentions, OFAC Sanctioned, Country Corruption Rank, Geolocation (Lon, Lat), Overall Risk Level",
		lines[0])
	assert.Equal(t, "Acme Corp,ACME CORP LTD,7.2,6,44,0,No,88.2,-74.006, 40.7128,High", lines[1])
	assert.Equal(t,
		"Globex,No data found,No data found,No data found,No data found,No data found,No,No data found,No data found,Low",
		lines[2])

	// rows without an embedded comma have exactly ten cells; the geolocation
	// cell of row A widens it to eleven, the historical format quirk
	assert.Len(t, strings.Split(lines[2], ","), 10)
	assert.Len(t, strings.Split(lines[1], ","), 11)

	reportContent, err := os.ReadFile(outputReportFile)
	require.NoError(t, err)
	report := string(reportContent)
	assert.Contains(t, report, "Company: Acme Corp\nRisk Level: High\n")
	assert.Contains(t, report, "Company: Globex\nRisk Level: Low\n")
	assert.Contains(t, report, "Geolocation: -74.006, 40.7128\n")
	assert.Contains(t, report, "----------------------\n")
	assert.Contains(t, report, "Summary:\n- 1 out of 2 companies are classified as HIGH risk due to AML/CPI risk factors.\n- 0 companies are sanctioned.\n- 2 companies have no negative media mentions, reducing reputational risk.\n")
}

func TestEnrichCompaniesSanctionedCompany(t *testing.T) {
	defer gock.Off()

	mockToken()
	mockSanctions("Acme Corp Holdings,123,OFAC\n")

	gock.New("https://sayari.test").
		Get("/v1/search/entity").
		Reply(http.StatusOK).
		JSON(map[string]any{
			"data": []map[string]any{{
				"label": "ACME CORP LTD",
				"risk": map[string]any{
					"basel_aml": map[string]any{"value": 1, "level": "relevant"},
				},
			}},
		})
	gock.New("https://geocode.test").
		Get("/v1/forward").
		Reply(http.StatusOK).
		JSON(map[string]any{"data": []any{}})

	uc, outputCsvFile, _ := newTestUsecase(t, "name\nacme corp\n")

	summary, err := uc.EnrichCompanies(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.SanctionedCount)
	assert.Equal(t, 1, summary.HighRiskCount)

	csvContent, err := os.ReadFile(outputCsvFile)
	require.NoError(t, err)
	assert.Contains(t, string(csvContent), "acme corp,ACME CORP LTD,No data found,1,No data found,No data found,Yes,No data found,No data found,Very High")
}

func TestEnrichCompaniesSanctionsFetchFailure(t *testing.T) {
	defer gock.Off()

	mockToken()
	gock.New("https://sanctions.test").
		Get("/sdn.csv").
		Reply(http.StatusInternalServerError)

	gock.New("https://sayari.test").
		Get("/v1/search/entity").
		Persist().
		Reply(http.StatusOK).
		JSON(map[string]any{"data": []any{}})
	gock.New("https://geocode.test").
		Get("/v1/forward").
		Persist().
		Reply(http.StatusOK).
		JSON(map[string]any{"data": []any{}})

	uc, outputCsvFile, outputReportFile := newTestUsecase(t, "name\nAcme Corp\nGlobex\n")

	summary, err := uc.EnrichCompanies(context.Background())
	require.NoError(t, err)

	// a failed download degrades to "nothing is sanctioned"
	assert.Equal(t, 0, summary.SanctionedCount)

	csvContent, err := os.ReadFile(outputCsvFile)
	require.NoError(t, err)
	assert.NotContains(t, string(csvContent), ",Yes,")

	reportContent, err := os.ReadFile(outputReportFile)
	require.NoError(t, err)
	assert.Contains(t, string(reportContent), "- 0 companies are sanctioned.")
}

func TestEnrichCompaniesMaxCompaniesCap(t *testing.T) {
	defer gock.Off()

	mockToken()
	mockSanctions("")

	gock.New("https://sayari.test").
		Get("/v1/search/entity").
		Persist().
		Reply(http.StatusOK).
		JSON(map[string]any{"data": []any{}})
	gock.New("https://geocode.test").
		Get("/v1/forward").
		Persist().
		Reply(http.StatusOK).
		JSON(map[string]any{"data": []any{}})

	uc, outputCsvFile, _ := newTestUsecase(t, "name\nA One\nB Two\nC Three\nD Four\n")
	uc.config.MaxCompanies = 2

	summary, err := uc.EnrichCompanies(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalCompanies)

	csvContent, err := os.ReadFile(outputCsvFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(csvContent), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "A One")
	assert.Contains(t, lines[2], "B Two")
}

func TestEnrichCompaniesMissingInputIsFatal(t *testing.T) {
	uc := Usecases{
		Config: Configuration{
			CompanyListFile: filepath.Join(t.TempDir(), "missing.csv"),
		},
	}.NewEnrichmentUsecase()

	_, err := uc.EnrichCompanies(context.Background())
	assert.Error(t, err)
}
