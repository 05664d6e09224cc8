package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-ingest/internal/domain/summary"
	qb "github.com/riskibarqy/cricket-ingest/internal/platform/querybuilder"
	"github.com/shopspring/decimal"
)

type SummaryRepository struct {
	db *sqlx.DB
}

// countableTables guards CountTable against arbitrary identifiers, since
// table names cannot be bound as query parameters.
var countableTables = map[string]struct{}{
	"matches":         {},
	"players":         {},
	"match_players":   {},
	"innings":         {},
	"deliveries":      {},
	"partnerships":    {},
	"match_officials": {},
}

func NewSummaryRepository(db *sqlx.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

func (r *SummaryRepository) MatchSummaries(ctx context.Context, limit int) ([]summary.MatchSummary, error) {
	builder := qb.Select(
		"match_id", "start_date", "season_year", "team1", "team2", "venue", "city",
		"winner", "margin", "player_of_match",
		"team1_runs", "team1_wickets", "team1_overs",
		"team2_runs", "team2_wickets", "team2_overs",
	).From("match_summary").
		OrderBy("start_date DESC NULLS LAST", "match_id DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match summaries query: %w", err)
	}

	var rows []matchSummaryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match summaries: %w", err)
	}

	out := make([]summary.MatchSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, summary.MatchSummary{
			MatchID:       row.MatchID,
			StartDate:     row.StartDate,
			SeasonYear:    row.SeasonYear,
			Team1:         stringValue(row.Team1),
			Team2:         stringValue(row.Team2),
			Venue:         stringValue(row.Venue),
			City:          stringValue(row.City),
			Winner:        stringValue(row.Winner),
			Margin:        stringValue(row.Margin),
			PlayerOfMatch: stringValue(row.PlayerOfMatch),
			Team1Runs:     row.Team1Runs,
			Team1Wickets:  row.Team1Wickets,
			Team1Overs:    row.Team1Overs,
			Team2Runs:     row.Team2Runs,
			Team2Wickets:  row.Team2Wickets,
			Team2Overs:    row.Team2Overs,
		})
	}

	return out, nil
}

func (r *SummaryRepository) TeamStats(ctx context.Context) ([]summary.TeamStats, error) {
	query, args, err := qb.Select("team", "matches_played", "wins", "losses", "win_percentage").
		From("team_stats").
		OrderBy("wins DESC", "team ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team stats query: %w", err)
	}

	var rows []teamStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team stats: %w", err)
	}

	out := make([]summary.TeamStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, summary.TeamStats{
			Team:          row.Team,
			MatchesPlayed: row.MatchesPlayed,
			Wins:          row.Wins,
			Losses:        row.Losses,
			WinPercentage: row.WinPercentage,
		})
	}

	return out, nil
}

func (r *SummaryRepository) CountTable(ctx context.Context, table string) (int64, error) {
	if _, ok := countableTables[table]; !ok {
		return 0, fmt.Errorf("count table: unknown table %q", table)
	}

	var count int64
	if err := r.db.GetContext(ctx, &count, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)); err != nil {
		return 0, fmt.Errorf("count table %s: %w", table, err)
	}

	return count, nil
}

type matchSummaryTableModel struct {
	MatchID       string          `db:"match_id"`
	StartDate     *time.Time      `db:"start_date"`
	SeasonYear    *int            `db:"season_year"`
	Team1         *string         `db:"team1"`
	Team2         *string         `db:"team2"`
	Venue         *string         `db:"venue"`
	City          *string         `db:"city"`
	Winner        *string         `db:"winner"`
	Margin        *string         `db:"margin"`
	PlayerOfMatch *string         `db:"player_of_match"`
	Team1Runs     int             `db:"team1_runs"`
	Team1Wickets  int             `db:"team1_wickets"`
	Team1Overs    decimal.Decimal `db:"team1_overs"`
	Team2Runs     int             `db:"team2_runs"`
	Team2Wickets  int             `db:"team2_wickets"`
	Team2Overs    decimal.Decimal `db:"team2_overs"`
}

type teamStatsTableModel struct {
	Team          string          `db:"team"`
	MatchesPlayed int             `db:"matches_played"`
	Wins          int             `db:"wins"`
	Losses        int             `db:"losses"`
	WinPercentage decimal.Decimal `db:"win_percentage"`
}
