package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pkoval/fifa-rivals/internal/config"
	"github.com/pkoval/fifa-rivals/internal/models"
	"github.com/pkoval/fifa-rivals/pkg/logger"
)

// GormStore is the SQL-backed Store. Production runs it against PostgreSQL;
// tests run it against in-memory SQLite.
type GormStore struct {
	db  *gorm.DB
	log *logger.Logger
}

// OpenPostgres connects to PostgreSQL and returns a migrated, seeded store.
func OpenPostgres(cfg *config.PostgresConfig, log *logger.Logger) (*GormStore, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Database,
		cfg.SSLMode,
	)

	var gormLogLevel gormlogger.LogLevel
	switch log.GetLogger().GetLevel() {
	case 0: // debug
		gormLogLevel = gormlogger.Info
	default:
		gormLogLevel = gormlogger.Warn
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("Connected to PostgreSQL")

	return NewGormStore(db, log)
}

// NewGormStore wraps an open gorm connection, migrating the schema and
// seeding the player roster if it is empty.
func NewGormStore(db *gorm.DB, log *logger.Logger) (*GormStore, error) {
	err := db.AutoMigrate(
		&models.Player{},
		&models.Match{},
		&models.Comment{},
		&models.Achievement{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	s := &GormStore{db: db, log: log}
	if err := s.seedPlayers(); err != nil {
		return nil, err
	}
	return s, nil
}

// seedPlayers inserts the two-player roster on first run.
func (s *GormStore) seedPlayers() error {
	var count int64
	if err := s.db.Model(&models.Player{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count players: %w", err)
	}
	if count > 0 {
		return nil
	}
	if err := s.db.Create(&DefaultPlayers).Error; err != nil {
		return fmt.Errorf("failed to seed players: %w", err)
	}
	s.log.Info().Int("players", len(DefaultPlayers)).Msg("Seeded player roster")
	return nil
}

// Close closes the underlying connection.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Health checks database connectivity.
func (s *GormStore) Health() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// ListPlayers returns the roster.
func (s *GormStore) ListPlayers() ([]models.Player, error) {
	var players []models.Player
	err := s.db.Order("id ASC").Find(&players).Error
	return players, err
}

// GetPlayer returns a player by id, or nil when absent.
func (s *GormStore) GetPlayer(id int) (*models.Player, error) {
	var player models.Player
	err := s.db.First(&player, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// ListMatches returns all matches ordered most-recent-first.
func (s *GormStore) ListMatches() ([]models.Match, error) {
	var matches []models.Match
	err := s.db.Order("date DESC, id DESC").Find(&matches).Error
	return matches, err
}

// GetMatch returns a match by id, or nil when absent.
func (s *GormStore) GetMatch(id int) (*models.Match, error) {
	var match models.Match
	err := s.db.First(&match, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// AddMatch inserts a match with a server-side timestamp.
func (s *GormStore) AddMatch(data AddMatchData) (*models.Match, error) {
	match := models.Match{
		Date:          time.Now().UTC(),
		Player1ID:     data.Player1ID,
		Player2ID:     data.Player2ID,
		Player1Score:  data.Player1Score,
		Player2Score:  data.Player2Score,
		Player1TeamID: data.Player1TeamID,
		Player2TeamID: data.Player2TeamID,
		ExtraTime:     data.ExtraTime,
		Penalties:     data.Penalties,
	}
	if err := s.db.Create(&match).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// UpdateMatch applies a partial correction. Returns nil when the match does
// not exist.
func (s *GormStore) UpdateMatch(id int, upd MatchUpdate) (*models.Match, error) {
	match, err := s.GetMatch(id)
	if err != nil || match == nil {
		return nil, err
	}
	upd.apply(match)
	if err := s.db.Save(match).Error; err != nil {
		return nil, err
	}
	return match, nil
}

// DeleteMatch removes a match and its dependents in one transaction:
// comments, then unlock records referencing the match, then the match.
func (s *GormStore) DeleteMatch(id int) (bool, error) {
	match, err := s.GetMatch(id)
	if err != nil {
		return false, err
	}
	if match == nil {
		return false, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", id).Delete(&models.Achievement{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Match{}, id).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListComments returns all comments for a match, oldest first.
func (s *GormStore) ListComments(matchID int) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.
		Where("match_id = ?", matchID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// AddComment inserts a comment.
func (s *GormStore) AddComment(matchID, playerID int, content string) (*models.Comment, error) {
	comment := models.Comment{
		MatchID:   matchID,
		PlayerID:  playerID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListAchievements returns unlock records, optionally filtered by player.
func (s *GormStore) ListAchievements(playerID int) ([]models.Achievement, error) {
	q := s.db.Order("unlocked_at DESC")
	if playerID != 0 {
		q = q.Where("player_id = ?", playerID)
	}
	var unlocks []models.Achievement
	err := q.Find(&unlocks).Error
	return unlocks, err
}

// AddAchievement inserts an unlock record.
func (s *GormStore) AddAchievement(playerID int, typeID string, matchID int) (*models.Achievement, error) {
	unlock := models.Achievement{
		PlayerID:   playerID,
		Type:       typeID,
		MatchID:    matchID,
		UnlockedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&unlock).Error; err != nil {
		return nil, err
	}
	return &unlock, nil
}
