package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"art-auction-backend/internal/baserow"
)

func newLotService(ts *testStore) *LotService {
	return NewLotService(ts.client(), zap.NewNop(), 4)
}

func TestTransformLotFinalPrice(t *testing.T) {
	// Field absent entirely: model price stays null.
	lot := baserow.Lot{ID: 1, InitialPrice: "5000"}
	model := transformLot(lot, nil)
	assert.Nil(t, model.FinalPrice)
	assert.Equal(t, 5000.0, model.InitialPrice)

	// Field present but empty: parses to 0, not null.
	lot.FinalPrice = strPtr("")
	model = transformLot(lot, nil)
	require.NotNil(t, model.FinalPrice)
	assert.Equal(t, 0.0, *model.FinalPrice)

	lot.FinalPrice = strPtr("4500.50")
	model = transformLot(lot, nil)
	require.NotNil(t, model.FinalPrice)
	assert.Equal(t, 4500.5, *model.FinalPrice)
}

func TestTransformLotCurrentBid(t *testing.T) {
	lot := baserow.Lot{
		ID: 1,
		Bets: []baserow.Reference{
			{ID: 10, Value: "100"},
			{ID: 11, Value: "250"},
			{ID: 12, Value: "80"},
		},
	}
	model := transformLot(lot, nil)
	require.NotNil(t, model.CurrentBid)
	assert.Equal(t, 250.0, *model.CurrentBid, "current bid is the maximum, not the sum or the last")

	model = transformLot(baserow.Lot{ID: 2}, nil)
	assert.Nil(t, model.CurrentBid)
}

func TestTransformLotStatusPassThrough(t *testing.T) {
	model := transformLot(baserow.Lot{ID: 1, Status: true}, nil)
	assert.True(t, model.IsActive)

	// Closed even though nothing else hints at a sale.
	model = transformLot(baserow.Lot{ID: 2, Status: false, FinalPrice: nil}, nil)
	assert.False(t, model.IsActive)
}

func TestListActiveAndSold(t *testing.T) {
	ts := newTestStore(t)
	ts.lots = []baserow.Lot{
		{ID: 1, Name: "Утро", Status: true},
		{ID: 2, Name: "Вечер", Status: false},
	}

	svc := newLotService(ts)

	active, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 1, active[0].ID)

	sold, err := svc.ListSold()
	require.NoError(t, err)
	require.Len(t, sold, 1)
	assert.Equal(t, 2, sold[0].ID)
}

func TestListFavorites(t *testing.T) {
	ts := newTestStore(t)
	ts.lots = []baserow.Lot{
		{ID: 1, Favorite: true},
		{ID: 2},
		{ID: 3, Favorite: true},
	}

	favorites, err := newLotService(ts).ListFavorites()
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, 1, favorites[0].ID)
	assert.Equal(t, 3, favorites[1].ID)
}

func TestListByArtistIDEnrichesCoBilledArtists(t *testing.T) {
	ts := newTestStore(t)
	ts.artists = []baserow.Artist{
		{ID: 1, Name: "Иванов", DisplayName: "Иван Иванов"},
		{ID: 2, Name: "Петров", DisplayName: "Пётр Петров"},
		{ID: 3, Name: "Сидоров"},
	}
	ts.lots = []baserow.Lot{
		{ID: 10, Name: "Дуэт", Artists: []baserow.Reference{{ID: 1, Value: "Иванов"}, {ID: 2, Value: "Петров"}}},
		{ID: 11, Name: "Соло", Artists: []baserow.Reference{{ID: 3, Value: "Сидоров"}}},
	}

	lots, err := newLotService(ts).ListByArtistID(1)
	require.NoError(t, err)
	require.Len(t, lots, 1)
	require.Len(t, lots[0].Artists, 2)

	// The co-billed artist gets a display name too, not just the target.
	assert.Equal(t, "Иван Иванов", lots[0].Artists[0].DisplayName)
	assert.Equal(t, "Пётр Петров", lots[0].Artists[1].DisplayName)
}

func TestListByAuctionID(t *testing.T) {
	ts := newTestStore(t)
	ts.lots = []baserow.Lot{
		{ID: 1, Auctions: []baserow.Reference{{ID: 7, Value: "Осенний"}}},
		{ID: 2, Auctions: []baserow.Reference{{ID: 8, Value: "Зимний"}}},
	}

	lots, err := newLotService(ts).ListByAuctionID(7)
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Equal(t, 1, lots[0].ID)
}

func TestGetByIDDisplayNameFallback(t *testing.T) {
	ts := newTestStore(t)
	ts.artists = []baserow.Artist{{ID: 3, Name: "Сидоров"}} // no displayName set
	ts.lots = []baserow.Lot{
		{ID: 5, Name: "Натюрморт", Artists: []baserow.Reference{{ID: 3, Value: "Сидоров"}}},
	}

	lot, err := newLotService(ts).GetByID(5)
	require.NoError(t, err)
	require.Len(t, lot.Artists, 1)
	assert.Equal(t, "Сидоров", lot.Artists[0].DisplayName)
}

func TestGetByIDNotFound(t *testing.T) {
	ts := newTestStore(t)

	_, err := newLotService(ts).GetByID(404)
	require.Error(t, err)
	assert.True(t, baserow.IsNotFound(err))
}

func TestArtistDisplayNamesEmptyInput(t *testing.T) {
	ts := newTestStore(t)
	svc := newLotService(ts)

	names := svc.artistDisplayNames(nil)
	assert.Empty(t, names)
	assert.Equal(t, 0, ts.requestCount(), "empty input must not issue network calls")
}

func TestArtistDisplayNamesPartialFailure(t *testing.T) {
	ts := newTestStore(t)
	ts.artists = []baserow.Artist{
		{ID: 1, DisplayName: "Первый"},
		{ID: 2, DisplayName: "Второй"},
		{ID: 3, DisplayName: "Третий"},
	}
	ts.failArtistIDs[2] = true

	names := newLotService(ts).artistDisplayNames([]int{1, 2, 3})

	assert.Equal(t, map[int]string{1: "Первый", 3: "Третий"}, names,
		"succeeding ids survive a failed sibling fetch")
}
