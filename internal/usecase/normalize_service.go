package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/cricket-ingest/external/cricsheet"
	"github.com/riskibarqy/cricket-ingest/internal/domain/delivery"
	"github.com/riskibarqy/cricket-ingest/internal/domain/innings"
	"github.com/riskibarqy/cricket-ingest/internal/domain/match"
	"github.com/riskibarqy/cricket-ingest/internal/domain/official"
	"github.com/riskibarqy/cricket-ingest/internal/domain/partnership"
	"github.com/riskibarqy/cricket-ingest/internal/domain/roster"
	"github.com/riskibarqy/cricket-ingest/internal/platform/coerce"
	"github.com/riskibarqy/cricket-ingest/internal/platform/logging"
	"github.com/shopspring/decimal"
)

const (
	defaultGender       = "male"
	defaultMatchType    = "T20"
	defaultTeamType     = "club"
	defaultCompetition  = "Indian Premier League"
	defaultOvers        = 20
	defaultBallsPerOver = 6

	maxDeliveryErrorSamples = 3
)

// RecordStats reports what one scorecard contributed.
type RecordStats struct {
	MatchID        string
	Innings        int
	Deliveries     int
	DeliveryErrors int
	ErrorSamples   []string
}

// NormalizeService turns one parsed scorecard into normalized rows across the
// match, roster, official, delivery, innings, and partnership gateways.
type NormalizeService struct {
	matches      match.Repository
	rosters      roster.Repository
	officials    official.Repository
	inningsRepo  innings.Repository
	deliveries   delivery.Repository
	partnerships partnership.Repository
	resolver     *PlayerResolver
	logger       *logging.Logger
	ballsPerOver int
}

func NewNormalizeService(
	matches match.Repository,
	rosters roster.Repository,
	officials official.Repository,
	inningsRepo innings.Repository,
	deliveries delivery.Repository,
	partnerships partnership.Repository,
	resolver *PlayerResolver,
	logger *logging.Logger,
	ballsPerOver int,
) *NormalizeService {
	if logger == nil {
		logger = logging.Default()
	}
	if ballsPerOver <= 0 {
		ballsPerOver = defaultBallsPerOver
	}
	return &NormalizeService{
		matches:      matches,
		rosters:      rosters,
		officials:    officials,
		inningsRepo:  inningsRepo,
		deliveries:   deliveries,
		partnerships: partnerships,
		resolver:     resolver,
		logger:       logger,
		ballsPerOver: ballsPerOver,
	}
}

// IngestRecord normalizes and persists one match. The match header, squads,
// and officials are written first; deliveries and partnerships are then
// replaced wholesale so re-ingesting the same file converges to one copy.
func (s *NormalizeService) IngestRecord(ctx context.Context, matchID string, rec *cricsheet.Record) (RecordStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NormalizeService.IngestRecord")
	defer span.End()

	stats := RecordStats{MatchID: matchID}
	if strings.TrimSpace(matchID) == "" {
		return stats, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if rec == nil {
		return stats, fmt.Errorf("%w: record is required", ErrInvalidInput)
	}

	m := s.buildMatch(matchID, rec)
	if err := s.matches.Upsert(ctx, m); err != nil {
		return stats, fmt.Errorf("persist match %s: %w", matchID, err)
	}

	registry := rec.Info.Registry.People
	s.linkSquads(ctx, matchID, rec.Info.Players, registry)
	s.recordOfficials(ctx, matchID, rec.Info.Officials)

	ballsPerOver := coerce.Int(rec.Info.BallsPerOver, s.ballsPerOver)
	if ballsPerOver <= 0 {
		ballsPerOver = s.ballsPerOver
	}

	var allDeliveries []delivery.Delivery
	var allInnings []innings.Innings
	var allPartnerships []partnership.Partnership

	for idx, inn := range rec.Innings {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		number := idx + 1
		battingTeam := inn.Team
		bowlingTeam := otherTeam(battingTeam, m.Team1, m.Team2)

		rows, errCount, samples := s.collectDeliveries(ctx, matchID, number, inn, registry, battingTeam, bowlingTeam)
		stats.DeliveryErrors += errCount
		for _, sample := range samples {
			if len(stats.ErrorSamples) < maxDeliveryErrorSamples {
				stats.ErrorSamples = append(stats.ErrorSamples, sample)
			}
		}

		totalRuns, wickets := 0, 0
		for _, row := range rows {
			totalRuns += row.RunsTotal
		}
		for _, over := range inn.Overs {
			for _, d := range over.Deliveries {
				wickets += len(d.Wickets)
			}
		}

		overs, runRate := oversAndRunRate(totalRuns, len(rows), ballsPerOver)
		allInnings = append(allInnings, innings.Innings{
			MatchID:     matchID,
			Number:      number,
			Team:        inn.Team,
			BattingTeam: battingTeam,
			BowlingTeam: bowlingTeam,
			TotalRuns:   totalRuns,
			TotalBalls:  len(rows),
			Wickets:     wickets,
			Overs:       overs,
			RunRate:     runRate,
		})

		allPartnerships = append(allPartnerships, buildPartnerships(matchID, number, rows)...)
		allDeliveries = append(allDeliveries, rows...)
		stats.Deliveries += len(rows)
	}
	stats.Innings = len(rec.Innings)

	if err := s.deliveries.ReplaceByMatch(ctx, matchID, allDeliveries); err != nil {
		return stats, fmt.Errorf("persist deliveries %s: %w", matchID, err)
	}
	for _, inn := range allInnings {
		if err := s.inningsRepo.Upsert(ctx, inn); err != nil {
			return stats, fmt.Errorf("persist innings %s/%d: %w", matchID, inn.Number, err)
		}
	}
	if err := s.partnerships.ReplaceByMatch(ctx, matchID, allPartnerships); err != nil {
		return stats, fmt.Errorf("persist partnerships %s: %w", matchID, err)
	}

	return stats, nil
}

func (s *NormalizeService) buildMatch(matchID string, rec *cricsheet.Record) match.Match {
	info := rec.Info

	m := match.Match{
		ID:           matchID,
		TeamType:     info.TeamType,
		MatchType:    info.MatchType,
		Gender:       info.Gender,
		Competition:  info.Event.Name,
		TossWinner:   info.Toss.Winner,
		TossDecision: info.Toss.Decision,
		Winner:       info.Outcome.Winner,
		DataVersion:  anyToString(rec.Meta.DataVersion),
	}
	if m.TeamType == "" {
		m.TeamType = defaultTeamType
	}
	if m.MatchType == "" {
		m.MatchType = defaultMatchType
	}
	if m.Gender == "" {
		m.Gender = defaultGender
	}
	if m.Competition == "" {
		m.Competition = defaultCompetition
	}

	if len(info.Dates) > 0 {
		if parsed, ok := coerce.Date(info.Dates[0]); ok {
			m.StartDate = &parsed
		}
	}

	if info.Overs == nil {
		overs := defaultOvers
		m.Overs = &overs
	} else {
		m.Overs = coerce.IntPtr(info.Overs)
	}
	m.BallsPerOver = coerce.Int(info.BallsPerOver, s.ballsPerOver)
	if m.BallsPerOver <= 0 {
		m.BallsPerOver = s.ballsPerOver
	}

	m.MatchNumber = coerce.IntPtr(info.Event.MatchNumber)
	m.SeasonYear = coerce.IntPtr(info.Season)
	if m.SeasonYear != nil {
		m.Season = strconv.Itoa(*m.SeasonYear)
	}

	if len(info.Teams) > 0 {
		m.Team1 = info.Teams[0]
	}
	if len(info.Teams) > 1 {
		m.Team2 = info.Teams[1]
	}
	m.Venue = info.Venue
	m.City = info.City
	m.Margin = marginFromOutcome(info.Outcome)
	m.PlayerOfMatch = strings.Join(info.PlayerOfMatch, ", ")

	return m
}

// marginFromOutcome renders a "by" clause as stored text. Runs take priority
// over wickets; any other outcome leaves the margin unset.
func marginFromOutcome(outcome cricsheet.Outcome) string {
	if outcome.By == nil {
		return ""
	}
	if outcome.By.Runs != nil {
		return fmt.Sprintf("%d runs", coerce.Int(outcome.By.Runs, 0))
	}
	if outcome.By.Wickets != nil {
		return fmt.Sprintf("%d wickets", coerce.Int(outcome.By.Wickets, 0))
	}
	return ""
}

func (s *NormalizeService) linkSquads(ctx context.Context, matchID string, squads map[string][]string, registry map[string]string) {
	teams := make([]string, 0, len(squads))
	for team := range squads {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	for _, team := range teams {
		for _, name := range squads[team] {
			id := s.resolver.Resolve(ctx, name, registry[name])
			if id == nil {
				continue
			}
			link := roster.Link{
				MatchID:      matchID,
				PlayerID:     *id,
				Team:         team,
				RegistryName: registry[name],
			}
			if err := s.rosters.UpsertLink(ctx, link); err != nil {
				s.logger.WarnContext(ctx, "link squad player failed",
					"match_id", matchID, "player", name, "error", err.Error())
			}
		}
	}
}

func (s *NormalizeService) recordOfficials(ctx context.Context, matchID string, officials cricsheet.Officials) {
	insert := func(role official.Role, names []string) {
		for _, name := range names {
			o := official.Official{MatchID: matchID, Role: role, Name: name}
			if err := s.officials.Insert(ctx, o); err != nil {
				s.logger.WarnContext(ctx, "record official failed",
					"match_id", matchID, "role", string(role), "error", err.Error())
			}
		}
	}

	insert(official.RoleUmpire, officials.Umpires)
	insert(official.RoleTVUmpire, officials.TVUmpires)
	insert(official.RoleReserveUmpire, officials.ReserveUmpires)
	insert(official.RoleMatchReferee, officials.MatchReferees)
}

// collectDeliveries flattens one innings into delivery rows. BallSequence
// advances only for rows that survive, so the persisted sequence stays dense
// and strictly increasing.
func (s *NormalizeService) collectDeliveries(
	ctx context.Context,
	matchID string,
	inningsNumber int,
	inn cricsheet.Innings,
	registry map[string]string,
	battingTeam, bowlingTeam string,
) ([]delivery.Delivery, int, []string) {
	var rows []delivery.Delivery
	var samples []string
	errCount := 0
	ballSequence := 1

	for _, over := range inn.Overs {
		overNumber := coerce.Int(over.Over, 0)

		for _, decodeErr := range over.Malformed {
			errCount++
			if len(samples) < maxDeliveryErrorSamples {
				samples = append(samples, decodeErr.Error())
			}
			s.logger.WarnContext(ctx, "delivery skipped",
				"match_id", matchID, "innings", inningsNumber, "over", overNumber, "error", decodeErr.Error())
		}

		for ballInOver, d := range over.Deliveries {
			row, err := s.buildDelivery(ctx, matchID, inningsNumber, overNumber, ballInOver+1, ballSequence, d, registry, battingTeam, bowlingTeam)
			if err != nil {
				errCount++
				if len(samples) < maxDeliveryErrorSamples {
					samples = append(samples, err.Error())
				}
				s.logger.WarnContext(ctx, "delivery skipped",
					"match_id", matchID, "innings", inningsNumber, "over", overNumber, "error", err.Error())
				continue
			}

			rows = append(rows, row)
			ballSequence++
		}
	}

	return rows, errCount, samples
}

func (s *NormalizeService) buildDelivery(
	ctx context.Context,
	matchID string,
	inningsNumber, overNumber, ballInOver, ballSequence int,
	d cricsheet.Delivery,
	registry map[string]string,
	battingTeam, bowlingTeam string,
) (delivery.Delivery, error) {
	batterID := s.resolver.Resolve(ctx, d.Batter, registry[d.Batter])
	nonStrikerID := s.resolver.Resolve(ctx, d.NonStriker, registry[d.NonStriker])
	bowlerID := s.resolver.Resolve(ctx, d.Bowler, registry[d.Bowler])

	s.ensureRosterLink(ctx, matchID, batterID, battingTeam)
	s.ensureRosterLink(ctx, matchID, nonStrikerID, battingTeam)
	s.ensureRosterLink(ctx, matchID, bowlerID, bowlingTeam)

	runsBatter := coerce.Int(d.Runs.Batter, 0)
	runsExtras := coerce.Int(d.Runs.Extras, 0)
	runsTotal := coerce.Int(d.Runs.Total, runsBatter+runsExtras)

	extraType := ""
	extraValue := 0
	for _, kind := range delivery.ExtraPriority {
		if raw, ok := d.Extras[kind]; ok {
			extraType = kind
			extraValue = coerce.Int(raw, 0)
			break
		}
	}

	row := delivery.Delivery{
		MatchID:       matchID,
		InningsNumber: inningsNumber,
		OverNumber:    overNumber,
		BallInOver:    ballInOver,
		BallSequence:  ballSequence,
		Batter:        d.Batter,
		BatterID:      batterID,
		NonStriker:    d.NonStriker,
		NonStrikerID:  nonStrikerID,
		Bowler:        d.Bowler,
		BowlerID:      bowlerID,
		RunsBatter:    runsBatter,
		RunsExtras:    runsExtras,
		RunsTotal:     runsTotal,
		ExtraType:     extraType,
		ExtraValue:    extraValue,
	}

	if rev := d.Review; rev != nil {
		row.ReviewType = rev.Type
		row.ReviewBy = rev.By
		row.ReviewUmpire = rev.Umpire
		row.ReviewBatter = rev.Batter
		row.ReviewDecision = rev.Decision
	}

	// Only the first dismissal is stored per ball; the innings wicket counter
	// still reflects every one.
	if len(d.Wickets) > 0 {
		wicket := d.Wickets[0]
		row.IsWicket = true
		row.WicketKind = wicket.Kind
		row.WicketPlayer = wicket.PlayerOut
		row.WicketPlayerID = s.resolver.Resolve(ctx, wicket.PlayerOut, registry[wicket.PlayerOut])
		if len(wicket.Fielders) > 0 {
			row.Fielder = wicket.Fielders[0].Name
			row.FielderID = s.resolver.Resolve(ctx, wicket.Fielders[0].Name, registry[wicket.Fielders[0].Name])
		}
	}

	if err := row.Validate(); err != nil {
		return delivery.Delivery{}, err
	}

	return row, nil
}

func (s *NormalizeService) ensureRosterLink(ctx context.Context, matchID string, playerID *int64, team string) {
	if playerID == nil {
		return
	}
	link := roster.Link{MatchID: matchID, PlayerID: *playerID, Team: team}
	if err := s.rosters.EnsureLink(ctx, link); err != nil {
		s.logger.DebugContext(ctx, "ensure roster link failed",
			"match_id", matchID, "player_id", *playerID, "error", err.Error())
	}
}

// oversAndRunRate derives the cricket-notation overs figure (whole overs,
// then balls in progress after the decimal point) and the run rate against
// that figure.
func oversAndRunRate(totalRuns, totalBalls, ballsPerOver int) (decimal.Decimal, decimal.Decimal) {
	complete := totalBalls / ballsPerOver
	remainder := totalBalls % ballsPerOver

	overs := decimal.NewFromInt(int64(complete))
	if remainder > 0 {
		overs = overs.Add(decimal.New(int64(remainder), -1))
	}

	runRate := decimal.Zero
	if overs.IsPositive() {
		runRate = decimal.NewFromInt(int64(totalRuns)).DivRound(overs, 2)
	}

	return overs, runRate
}

// buildPartnerships splits an innings into batting stands: each maximal run
// of deliveries with the same pair at the crease becomes one stand.
func buildPartnerships(matchID string, inningsNumber int, rows []delivery.Delivery) []partnership.Partnership {
	var out []partnership.Partnership
	var current *partnership.Partnership

	pairKey := func(a, b string) string {
		if a > b {
			a, b = b, a
		}
		return a + "|" + b
	}

	currentKey := ""
	for _, row := range rows {
		key := pairKey(row.Batter, row.NonStriker)
		if current == nil || key != currentKey {
			if current != nil {
				out = append(out, *current)
			}
			batter1, batter1ID := row.Batter, row.BatterID
			batter2, batter2ID := row.NonStriker, row.NonStrikerID
			if batter1 > batter2 {
				batter1, batter2 = batter2, batter1
				batter1ID, batter2ID = batter2ID, batter1ID
			}
			current = &partnership.Partnership{
				MatchID:       matchID,
				InningsNumber: inningsNumber,
				WicketNumber:  len(out) + 1,
				Batter1:       batter1,
				Batter1ID:     batter1ID,
				Batter2:       batter2,
				Batter2ID:     batter2ID,
			}
			currentKey = key
		}

		current.Runs += row.RunsTotal
		current.Balls++
	}
	if current != nil {
		out = append(out, *current)
	}

	return out
}

func otherTeam(battingTeam, team1, team2 string) string {
	if battingTeam == team1 {
		return team2
	}
	return team1
}

func anyToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
