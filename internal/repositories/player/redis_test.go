package player

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/zombiedice/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		TTL:         30 * time.Minute,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayer() {
	player := &models.Player{
		ID:     "test-player-id",
		GameID: "test-game-id",
		Name:   "Romero",
		Seat:   2,
		Score:  7,
	}

	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: player})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{PlayerID: "test-player-id"})
	s.Require().NoError(err)
	s.Equal(player, retrieved)

	s.Equal(30*time.Minute, s.mr.TTL("player:test-player-id"))
	s.Equal(30*time.Minute, s.mr.TTL("game_players:test-game-id"))
}

func (s *RedisRepositoryTestSuite) TestSavePlayerValidatesInput() {
	s.Error(s.repo.SavePlayer(context.Background(), nil))
	s.Error(s.repo.SavePlayer(context.Background(), &SavePlayerInput{}))
	s.Error(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: &models.Player{Name: "No ID"}}))
}

func (s *RedisRepositoryTestSuite) TestGetPlayerNotFound() {
	_, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{PlayerID: "missing"})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetPlayersInGameIsSeatOrdered() {
	players := []*models.Player{
		{ID: "c", GameID: "test-game-id", Name: "Carol", Seat: 2},
		{ID: "a", GameID: "test-game-id", Name: "Alice", Seat: 0},
		{ID: "b", GameID: "test-game-id", Name: "Bob", Seat: 1},
		{ID: "z", GameID: "other-game-id", Name: "Zed", Seat: 0},
	}
	err := s.repo.SavePlayers(context.Background(), &SavePlayersInput{Players: players})
	s.Require().NoError(err)

	output, err := s.repo.GetPlayersInGame(context.Background(), &GetPlayersInGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Require().Len(output.Players, 3)
	s.Equal("Alice", output.Players[0].Name)
	s.Equal("Bob", output.Players[1].Name)
	s.Equal("Carol", output.Players[2].Name)
}

func (s *RedisRepositoryTestSuite) TestSavePlayerUpdatesScore() {
	player := &models.Player{ID: "a", GameID: "test-game-id", Name: "Alice"}
	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: player}))

	player.Score = 9
	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: player}))

	output, err := s.repo.GetPlayersInGame(context.Background(), &GetPlayersInGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Require().Len(output.Players, 1)
	s.Equal(9, output.Players[0].Score)
}

func (s *RedisRepositoryTestSuite) TestSavePlayersIsAllOrNothing() {
	err := s.repo.SavePlayers(context.Background(), &SavePlayersInput{Players: []*models.Player{
		{ID: "a", GameID: "test-game-id", Name: "Alice"},
		{GameID: "test-game-id", Name: "No ID"},
	}})
	s.Error(err)

	_, err = s.repo.GetPlayer(context.Background(), &GetPlayerInput{PlayerID: "a"})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetPlayersInGameSkipsExpired() {
	err := s.repo.SavePlayers(context.Background(), &SavePlayersInput{Players: []*models.Player{
		{ID: "a", GameID: "test-game-id", Name: "Alice", Seat: 0},
		{ID: "b", GameID: "test-game-id", Name: "Bob", Seat: 1},
	}})
	s.Require().NoError(err)
	s.mr.Del("player:a")

	output, err := s.repo.GetPlayersInGame(context.Background(), &GetPlayersInGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Require().Len(output.Players, 1)
	s.Equal("b", output.Players[0].ID)
}

func (s *RedisRepositoryTestSuite) TestGetPlayersInEmptyGame() {
	output, err := s.repo.GetPlayersInGame(context.Background(), &GetPlayersInGameInput{GameID: "empty"})
	s.Require().NoError(err)
	s.Empty(output.Players)
}
