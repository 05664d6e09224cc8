package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-ingest/external/cricsheet"
	"github.com/riskibarqy/cricket-ingest/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-ingest/internal/platform/cache"
	"github.com/riskibarqy/cricket-ingest/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type normalizeFixture struct {
	service      *NormalizeService
	matches      *memory.MatchRepository
	players      *memory.PlayerRepository
	rosters      *memory.RosterRepository
	officials    *memory.OfficialRepository
	innings      *memory.InningsRepository
	deliveries   *memory.DeliveryRepository
	partnerships *memory.PartnershipRepository
}

func newNormalizeFixture(t *testing.T) *normalizeFixture {
	t.Helper()

	f := &normalizeFixture{
		matches:      memory.NewMatchRepository(),
		players:      memory.NewPlayerRepository(),
		rosters:      memory.NewRosterRepository(),
		officials:    memory.NewOfficialRepository(),
		innings:      memory.NewInningsRepository(),
		deliveries:   memory.NewDeliveryRepository(),
		partnerships: memory.NewPartnershipRepository(),
	}
	resolver := NewPlayerResolver(f.players, cache.NewStore(time.Minute), logging.NewNop())
	f.service = NewNormalizeService(
		f.matches, f.rosters, f.officials, f.innings, f.deliveries, f.partnerships,
		resolver, logging.NewNop(), 6,
	)

	return f
}

func ball(batter, nonStriker, bowler string, runs int) cricsheet.Delivery {
	return cricsheet.Delivery{
		Batter:     batter,
		NonStriker: nonStriker,
		Bowler:     bowler,
		Runs:       cricsheet.Runs{Batter: runs, Extras: 0, Total: runs},
	}
}

// overOf splits the given deliveries into overs of the given length.
func oversOf(length int, deliveries []cricsheet.Delivery) []cricsheet.Over {
	var out []cricsheet.Over
	for start := 0; start < len(deliveries); start += length {
		end := start + length
		if end > len(deliveries) {
			end = len(deliveries)
		}
		out = append(out, cricsheet.Over{
			Over:       len(out),
			Deliveries: deliveries[start:end],
		})
	}
	return out
}

func testRecord() *cricsheet.Record {
	// 17 legal balls of 1 run each in the first innings, 12 balls of mixed
	// runs in the second.
	firstInnings := make([]cricsheet.Delivery, 0, 17)
	for i := 0; i < 17; i++ {
		firstInnings = append(firstInnings, ball("RD Gaikwad", "DP Conway", "JJ Bumrah", 1))
	}

	secondInnings := make([]cricsheet.Delivery, 0, 12)
	for i := 0; i < 12; i++ {
		d := ball("RG Sharma", "I Kishan", "DL Chahar", 2)
		d.Runs = cricsheet.Runs{Batter: 2, Extras: 0, Total: 2}
		secondInnings = append(secondInnings, d)
	}

	return &cricsheet.Record{
		Meta: cricsheet.Meta{DataVersion: "1.1", Created: "2023-04-01", Revision: 2},
		Info: cricsheet.Info{
			City:          "Mumbai",
			Venue:         "Wankhede Stadium",
			Dates:         []string{"2023-04-01"},
			Gender:        "male",
			MatchType:     "T20",
			Overs:         20,
			BallsPerOver:  6,
			Season:        "2023",
			Teams:         []string{"Chennai Super Kings", "Mumbai Indians"},
			Event:         cricsheet.Event{Name: "Indian Premier League", MatchNumber: 12},
			Toss:          cricsheet.Toss{Winner: "Mumbai Indians", Decision: "field"},
			Outcome:       cricsheet.Outcome{Winner: "Chennai Super Kings", By: &cricsheet.OutcomeBy{Runs: 7}},
			PlayerOfMatch: []string{"RD Gaikwad"},
			Registry:      cricsheet.Registry{People: map[string]string{"RD Gaikwad": "r1", "JJ Bumrah": "b1"}},
			Players: map[string][]string{
				"Chennai Super Kings": {"RD Gaikwad", "DP Conway", "DL Chahar"},
				"Mumbai Indians":      {"RG Sharma", "I Kishan", "JJ Bumrah"},
			},
			Officials: cricsheet.Officials{
				Umpires:       []string{"Nitin Menon", "Anil Chaudhary"},
				TVUmpires:     []string{"KN Ananthapadmanabhan"},
				MatchReferees: []string{"J Srinath"},
			},
		},
		Innings: []cricsheet.Innings{
			{Team: "Chennai Super Kings", Overs: oversOf(6, firstInnings)},
			{Team: "Mumbai Indians", Overs: oversOf(6, secondInnings)},
		},
	}
}

func TestIngestRecord_MatchHeader(t *testing.T) {
	f := newNormalizeFixture(t)

	_, err := f.service.IngestRecord(context.Background(), "980961", testRecord())
	require.NoError(t, err)

	m, err := f.matches.GetByID(context.Background(), "980961")
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, "7 runs", m.Margin)
	assert.Equal(t, "Chennai Super Kings", m.Winner)
	assert.Equal(t, "Chennai Super Kings", m.Team1)
	assert.Equal(t, "Mumbai Indians", m.Team2)
	assert.Equal(t, "club", m.TeamType)
	assert.Equal(t, "2023", m.Season)
	require.NotNil(t, m.SeasonYear)
	assert.Equal(t, 2023, *m.SeasonYear)
	require.NotNil(t, m.MatchNumber)
	assert.Equal(t, 12, *m.MatchNumber)
	require.NotNil(t, m.StartDate)
	assert.Equal(t, time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), *m.StartDate)
	assert.Equal(t, "RD Gaikwad", m.PlayerOfMatch)
	assert.Equal(t, "1.1", m.DataVersion)
}

func TestIngestRecord_SplitSeasonYieldsNoSeasonYear(t *testing.T) {
	f := newNormalizeFixture(t)

	rec := testRecord()
	rec.Info.Season = "2007/08"
	_, err := f.service.IngestRecord(context.Background(), "335982", rec)
	require.NoError(t, err)

	m, err := f.matches.GetByID(context.Background(), "335982")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Nil(t, m.SeasonYear)
	assert.Equal(t, "", m.Season)
}

func TestIngestRecord_MarginByWickets(t *testing.T) {
	f := newNormalizeFixture(t)

	rec := testRecord()
	rec.Info.Outcome.By = &cricsheet.OutcomeBy{Wickets: float64(5)}
	_, err := f.service.IngestRecord(context.Background(), "980962", rec)
	require.NoError(t, err)

	m, err := f.matches.GetByID(context.Background(), "980962")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "5 wickets", m.Margin)
}

func TestIngestRecord_InningsAggregates(t *testing.T) {
	f := newNormalizeFixture(t)

	stats, err := f.service.IngestRecord(context.Background(), "980961", testRecord())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Innings)
	assert.Equal(t, 29, stats.Deliveries)
	assert.Equal(t, 0, stats.DeliveryErrors)

	list, err := f.innings.ListByMatch(context.Background(), "980961")
	require.NoError(t, err)
	require.Len(t, list, 2)

	first := list[0]
	assert.Equal(t, "Chennai Super Kings", first.BattingTeam)
	assert.Equal(t, "Mumbai Indians", first.BowlingTeam)
	assert.Equal(t, 17, first.TotalRuns)
	assert.Equal(t, 17, first.TotalBalls)
	// 17 balls at 6 per over reads as 2.5 overs, and the rate divides by that
	// figure.
	assert.Equal(t, "2.5", first.Overs.String())
	assert.Equal(t, "6.8", first.RunRate.String())

	second := list[1]
	assert.Equal(t, "Mumbai Indians", second.BattingTeam)
	assert.Equal(t, "Chennai Super Kings", second.BowlingTeam)
	assert.Equal(t, 24, second.TotalRuns)
	assert.Equal(t, 12, second.TotalBalls)
	assert.Equal(t, "2", second.Overs.String())
	assert.Equal(t, "12", second.RunRate.String())
}

func TestIngestRecord_BallSequenceStrictlyIncreasing(t *testing.T) {
	f := newNormalizeFixture(t)

	_, err := f.service.IngestRecord(context.Background(), "980961", testRecord())
	require.NoError(t, err)

	rows := f.deliveries.ListByMatch("980961")
	require.NotEmpty(t, rows)

	last := map[int]int{}
	for _, row := range rows {
		assert.Equal(t, last[row.InningsNumber]+1, row.BallSequence)
		last[row.InningsNumber] = row.BallSequence
	}
	assert.Equal(t, 17, last[1])
	assert.Equal(t, 12, last[2])
}

func TestIngestRecord_ExtrasPriority(t *testing.T) {
	f := newNormalizeFixture(t)

	d := ball("RD Gaikwad", "DP Conway", "JJ Bumrah", 0)
	d.Runs = cricsheet.Runs{Batter: 0, Extras: 3, Total: 3}
	d.Extras = map[string]any{"legbyes": 1, "wides": 2}

	rec := &cricsheet.Record{
		Info: cricsheet.Info{Teams: []string{"Chennai Super Kings", "Mumbai Indians"}},
		Innings: []cricsheet.Innings{
			{Team: "Chennai Super Kings", Overs: []cricsheet.Over{{Over: 0, Deliveries: []cricsheet.Delivery{d}}}},
		},
	}

	_, err := f.service.IngestRecord(context.Background(), "700001", rec)
	require.NoError(t, err)

	rows := f.deliveries.ListByMatch("700001")
	require.Len(t, rows, 1)
	assert.Equal(t, "wides", rows[0].ExtraType)
	assert.Equal(t, 2, rows[0].ExtraValue)
	assert.Equal(t, 3, rows[0].RunsTotal)
}

func TestIngestRecord_FirstWicketStoredAllCounted(t *testing.T) {
	f := newNormalizeFixture(t)

	d := ball("RD Gaikwad", "DP Conway", "JJ Bumrah", 0)
	d.Wickets = []cricsheet.Wicket{
		{Kind: "run out", PlayerOut: "RD Gaikwad", Fielders: []cricsheet.Fielder{{Name: "SA Yadav"}}},
		{Kind: "retired hurt", PlayerOut: "DP Conway"},
	}

	rec := &cricsheet.Record{
		Info: cricsheet.Info{Teams: []string{"Chennai Super Kings", "Mumbai Indians"}},
		Innings: []cricsheet.Innings{
			{Team: "Chennai Super Kings", Overs: []cricsheet.Over{{Over: 0, Deliveries: []cricsheet.Delivery{d}}}},
		},
	}

	_, err := f.service.IngestRecord(context.Background(), "700002", rec)
	require.NoError(t, err)

	rows := f.deliveries.ListByMatch("700002")
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsWicket)
	assert.Equal(t, "run out", rows[0].WicketKind)
	assert.Equal(t, "RD Gaikwad", rows[0].WicketPlayer)
	assert.Equal(t, "SA Yadav", rows[0].Fielder)
	require.NotNil(t, rows[0].FielderID)

	list, err := f.innings.ListByMatch(context.Background(), "700002")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].Wickets)
}

func TestIngestRecord_SquadsAndOfficials(t *testing.T) {
	f := newNormalizeFixture(t)

	_, err := f.service.IngestRecord(context.Background(), "980961", testRecord())
	require.NoError(t, err)

	// Six squad players, all of whom also appear on deliveries.
	assert.Equal(t, 6, f.players.Len())
	assert.Equal(t, 6, f.rosters.Len())

	officials, err := f.officials.ListByMatch(context.Background(), "980961")
	require.NoError(t, err)
	assert.Len(t, officials, 4)
}

func TestIngestRecord_Idempotent(t *testing.T) {
	f := newNormalizeFixture(t)

	_, err := f.service.IngestRecord(context.Background(), "980961", testRecord())
	require.NoError(t, err)
	first, err := f.deliveries.CountByMatch(context.Background(), "980961")
	require.NoError(t, err)

	_, err = f.service.IngestRecord(context.Background(), "980961", testRecord())
	require.NoError(t, err)
	second, err := f.deliveries.CountByMatch(context.Background(), "980961")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 6, f.players.Len())
}

func TestIngestRecord_Partnerships(t *testing.T) {
	f := newNormalizeFixture(t)

	// Three balls with Gaikwad/Conway, then Conway is out and Dube comes in
	// for two more.
	deliveries := []cricsheet.Delivery{
		ball("RD Gaikwad", "DP Conway", "JJ Bumrah", 1),
		ball("DP Conway", "RD Gaikwad", "JJ Bumrah", 4),
		ball("DP Conway", "RD Gaikwad", "JJ Bumrah", 0),
		ball("S Dube", "RD Gaikwad", "JJ Bumrah", 6),
		ball("RD Gaikwad", "S Dube", "JJ Bumrah", 2),
	}
	deliveries[2].Wickets = []cricsheet.Wicket{{Kind: "bowled", PlayerOut: "DP Conway"}}

	rec := &cricsheet.Record{
		Info: cricsheet.Info{Teams: []string{"Chennai Super Kings", "Mumbai Indians"}},
		Innings: []cricsheet.Innings{
			{Team: "Chennai Super Kings", Overs: []cricsheet.Over{{Over: 0, Deliveries: deliveries}}},
		},
	}

	_, err := f.service.IngestRecord(context.Background(), "700003", rec)
	require.NoError(t, err)

	stands, err := f.partnerships.ListByMatch(context.Background(), "700003")
	require.NoError(t, err)
	require.Len(t, stands, 2)

	assert.Equal(t, 1, stands[0].WicketNumber)
	assert.Equal(t, "DP Conway", stands[0].Batter1)
	assert.Equal(t, "RD Gaikwad", stands[0].Batter2)
	assert.Equal(t, 5, stands[0].Runs)
	assert.Equal(t, 3, stands[0].Balls)

	assert.Equal(t, 2, stands[1].WicketNumber)
	assert.Equal(t, "RD Gaikwad", stands[1].Batter1)
	assert.Equal(t, "S Dube", stands[1].Batter2)
	assert.Equal(t, 8, stands[1].Runs)
	assert.Equal(t, 2, stands[1].Balls)
}

func TestIngestRecord_ReviewDetailStored(t *testing.T) {
	f := newNormalizeFixture(t)

	d := ball("MS Dhoni", "RD Gaikwad", "JJ Bumrah", 0)
	d.Wickets = []cricsheet.Wicket{{Kind: "lbw", PlayerOut: "MS Dhoni"}}
	d.Review = &cricsheet.Review{
		Type:     "wicket",
		By:       "Chennai Super Kings",
		Umpire:   "Nitin Menon",
		Batter:   "MS Dhoni",
		Decision: "struck down",
	}

	rec := &cricsheet.Record{
		Info: cricsheet.Info{Teams: []string{"Chennai Super Kings", "Mumbai Indians"}},
		Innings: []cricsheet.Innings{
			{Team: "Chennai Super Kings", Overs: []cricsheet.Over{{Over: 0, Deliveries: []cricsheet.Delivery{d}}}},
		},
	}

	_, err := f.service.IngestRecord(context.Background(), "700004", rec)
	require.NoError(t, err)

	rows := f.deliveries.ListByMatch("700004")
	require.Len(t, rows, 1)
	assert.Equal(t, "wicket", rows[0].ReviewType)
	assert.Equal(t, "Chennai Super Kings", rows[0].ReviewBy)
	assert.Equal(t, "Nitin Menon", rows[0].ReviewUmpire)
	assert.Equal(t, "MS Dhoni", rows[0].ReviewBatter)
	assert.Equal(t, "struck down", rows[0].ReviewDecision)
}

func TestIngestRecord_MalformedDeliveryCounted(t *testing.T) {
	f := newNormalizeFixture(t)

	// One bad ball between two good ones, the way the parser reports it.
	over := cricsheet.Over{
		Over: 0,
		Deliveries: []cricsheet.Delivery{
			ball("RD Gaikwad", "DP Conway", "JJ Bumrah", 1),
			ball("DP Conway", "RD Gaikwad", "JJ Bumrah", 2),
		},
		Malformed: []error{fmt.Errorf("decode delivery 2: unexpected runs shape")},
	}
	rec := &cricsheet.Record{
		Info: cricsheet.Info{Teams: []string{"Chennai Super Kings", "Mumbai Indians"}},
		Innings: []cricsheet.Innings{
			{Team: "Chennai Super Kings", Overs: []cricsheet.Over{over}},
		},
	}

	stats, err := f.service.IngestRecord(context.Background(), "700005", rec)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Deliveries)
	assert.Equal(t, 1, stats.DeliveryErrors)
	require.Len(t, stats.ErrorSamples, 1)
	assert.Contains(t, stats.ErrorSamples[0], "unexpected runs shape")

	rows := f.deliveries.ListByMatch("700005")
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].BallSequence)
	assert.Equal(t, 2, rows[1].BallSequence)
}

func TestIngestRecord_RequiresMatchID(t *testing.T) {
	f := newNormalizeFixture(t)

	_, err := f.service.IngestRecord(context.Background(), "  ", testRecord())
	require.ErrorIs(t, err, ErrInvalidInput)
}
