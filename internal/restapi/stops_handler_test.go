package restapi

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripgen.codingchallenge.net/internal/models"
	"tripgen.codingchallenge.net/internal/stops"
)

func stopList(t *testing.T, model models.ResponseModel) []map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	raw, ok := data["list"].([]interface{})
	require.True(t, ok)

	list := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		list = append(list, item.(map[string]interface{}))
	}
	return list
}

func TestStopsHandlerFromFareTable(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t, "/api/stops.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := stopList(t, model)
	require.Len(t, list, 3)
	assert.Equal(t, "Stop1", list[0]["id"])
	assert.Equal(t, true, list[0]["priced"])
	assert.Equal(t, 7.30, list[0]["maxFare"])
	assert.NotContains(t, list[0], "name")
}

func TestStopsHandlerFromGTFSFeed(t *testing.T) {
	catalog, err := stops.LoadCatalog(filepath.Join("..", "stops", "testdata", "gtfs.zip"))
	require.NoError(t, err)

	api := createTestApi(t)
	api.Stops = stops.NewCatalog(append(catalog.Stops(), stops.Stop{ID: "Depot", Name: "Bus Depot"}))

	resp, model := serveApiAndRetrieve(t, api, http.MethodGet, "/api/stops.json?key=TEST", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := stopList(t, model)
	require.Len(t, list, 4)
	assert.Equal(t, "Central Station", list[0]["name"])
	assert.NotNil(t, list[0]["lat"])

	depot := list[3]
	assert.Equal(t, "Depot", depot["id"])
	assert.Equal(t, false, depot["priced"])
	assert.Nil(t, depot["maxFare"])
}
