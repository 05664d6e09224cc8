package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/cricket-ingest/internal/domain/summary"
	"github.com/shopspring/decimal"
)

// SummaryRepository serves the same reporting shapes the database views do,
// computed from the other in-memory gateways.
type SummaryRepository struct {
	matches      *MatchRepository
	players      *PlayerRepository
	rosters      *RosterRepository
	innings      *InningsRepository
	deliveries   *DeliveryRepository
	partnerships *PartnershipRepository
	officials    *OfficialRepository
}

func NewSummaryRepository(
	matches *MatchRepository,
	players *PlayerRepository,
	rosters *RosterRepository,
	inningsRepo *InningsRepository,
	deliveries *DeliveryRepository,
	partnerships *PartnershipRepository,
	officials *OfficialRepository,
) *SummaryRepository {
	return &SummaryRepository{
		matches:      matches,
		players:      players,
		rosters:      rosters,
		innings:      inningsRepo,
		deliveries:   deliveries,
		partnerships: partnerships,
		officials:    officials,
	}
}

func (r *SummaryRepository) MatchSummaries(ctx context.Context, limit int) ([]summary.MatchSummary, error) {
	matches := r.matches.All()
	out := make([]summary.MatchSummary, 0, len(matches))
	for _, m := range matches {
		s := summary.MatchSummary{
			MatchID:       m.ID,
			StartDate:     m.StartDate,
			SeasonYear:    m.SeasonYear,
			Team1:         m.Team1,
			Team2:         m.Team2,
			Venue:         m.Venue,
			City:          m.City,
			Winner:        m.Winner,
			Margin:        m.Margin,
			PlayerOfMatch: m.PlayerOfMatch,
		}

		inningsList, err := r.innings.ListByMatch(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		for _, i := range inningsList {
			switch i.Number {
			case 1:
				s.Team1Runs = i.TotalRuns
				s.Team1Wickets = i.Wickets
				s.Team1Overs = i.Overs
			case 2:
				s.Team2Runs = i.TotalRuns
				s.Team2Wickets = i.Wickets
				s.Team2Overs = i.Overs
			}
		}

		out = append(out, s)
	}

	sort.Slice(out, func(a, b int) bool {
		da, db := out[a].StartDate, out[b].StartDate
		switch {
		case da == nil && db == nil:
			return out[a].MatchID > out[b].MatchID
		case da == nil:
			return false
		case db == nil:
			return true
		case da.Equal(*db):
			return out[a].MatchID > out[b].MatchID
		default:
			return da.After(*db)
		}
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *SummaryRepository) TeamStats(_ context.Context) ([]summary.TeamStats, error) {
	type record struct {
		played int
		wins   int
		losses int
	}

	records := make(map[string]*record)
	tally := func(team, winner string) {
		if team == "" {
			return
		}
		rec, ok := records[team]
		if !ok {
			rec = &record{}
			records[team] = rec
		}
		rec.played++
		if winner == team {
			rec.wins++
		} else if winner != "" {
			rec.losses++
		}
	}

	for _, m := range r.matches.All() {
		tally(m.Team1, m.Winner)
		tally(m.Team2, m.Winner)
	}

	out := make([]summary.TeamStats, 0, len(records))
	for team, rec := range records {
		winPct := decimal.Zero
		if rec.played > 0 {
			winPct = decimal.NewFromInt(int64(rec.wins * 100)).
				Div(decimal.NewFromInt(int64(rec.played))).
				Round(2)
		}
		out = append(out, summary.TeamStats{
			Team:          team,
			MatchesPlayed: rec.played,
			Wins:          rec.wins,
			Losses:        rec.losses,
			WinPercentage: winPct,
		})
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].Wins != out[b].Wins {
			return out[a].Wins > out[b].Wins
		}
		return out[a].Team < out[b].Team
	})

	return out, nil
}

func (r *SummaryRepository) CountTable(_ context.Context, table string) (int64, error) {
	switch table {
	case "matches":
		return int64(r.matches.Len()), nil
	case "players":
		return int64(r.players.Len()), nil
	case "match_players":
		return int64(r.rosters.Len()), nil
	case "innings":
		return int64(r.innings.Len()), nil
	case "deliveries":
		return int64(r.deliveries.Len()), nil
	case "partnerships":
		return int64(r.partnerships.Len()), nil
	case "match_officials":
		return int64(r.officials.Len()), nil
	default:
		return 0, fmt.Errorf("count table: unknown table %q", table)
	}
}
