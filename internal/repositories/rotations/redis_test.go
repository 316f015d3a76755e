package rotations

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/soeforge/rotation-builder/internal/domain/rotation"
	apperrors "github.com/soeforge/rotation-builder/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{Client: s.mockClient})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func testSnapshot() *rotation.Snapshot {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &rotation.Snapshot{
		ID: "rot-1",
		Metadata: rotation.Metadata{
			Name:       "Warrior Arms Rotation",
			ClassName:  "Warrior",
			SpecName:   "Arms",
			Author:     "Tester",
			Version:    "1.0",
			CreatedAt:  created,
			ModifiedAt: created,
			Tags:       []string{"pve"},
		},
		SpecID: 71,
		Spells: []*rotation.SpellEntry{
			{ID: "spell-1", Name: "Mortal Strike", Condition: "true", Priority: 1, Enabled: true},
			{ID: "spell-2", Name: "Execute", Condition: "target.health < 20", Priority: 2, Enabled: true},
		},
	}
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	snap := testSnapshot()

	data, err := json.Marshal(snap)
	s.Require().NoError(err)

	s.mock.ExpectTxPipeline()
	s.mock.ExpectExists("rotation:rot-1").SetVal(0)
	s.mock.ExpectSet("rotation:rot-1", data, 0).SetVal("OK")
	s.mock.ExpectSAdd("rotations:all", "rot-1").SetVal(1)
	s.mock.ExpectSAdd("class:Warrior:rotations", "rot-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Create(ctx, snap))
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	ctx := context.Background()
	snap := testSnapshot()

	data, err := json.Marshal(snap)
	s.Require().NoError(err)

	s.mock.ExpectTxPipeline()
	s.mock.ExpectExists("rotation:rot-1").SetVal(1)
	s.mock.ExpectSet("rotation:rot-1", data, 0).SetVal("OK")
	s.mock.ExpectSAdd("rotations:all", "rot-1").SetVal(0)
	s.mock.ExpectSAdd("class:Warrior:rotations", "rot-1").SetVal(0)
	s.mock.ExpectTxPipelineExec()

	err = s.repo.Create(ctx, snap)
	s.Error(err)
	s.True(apperrors.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreate_InvalidInput() {
	ctx := context.Background()

	s.Error(s.repo.Create(ctx, nil))

	snap := testSnapshot()
	snap.ID = ""
	s.Error(s.repo.Create(ctx, snap))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	snap := testSnapshot()

	data, err := json.Marshal(snap)
	s.Require().NoError(err)

	s.mock.ExpectGet("rotation:rot-1").SetVal(string(data))

	got, err := s.repo.Get(ctx, "rot-1")
	s.Require().NoError(err)
	s.Equal(snap.ID, got.ID)
	s.Equal(snap.SpecID, got.SpecID)
	s.Len(got.Spells, 2)
	s.Equal("Mortal Strike", got.Spells[0].Name)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("rotation:missing").RedisNil()

	_, err := s.repo.Get(ctx, "missing")
	s.Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_DependencyError() {
	ctx := context.Background()

	s.mock.ExpectGet("rotation:rot-1").SetErr(errors.New("redis error"))

	_, err := s.repo.Get(ctx, "rot-1")
	s.Error(err)
	s.False(apperrors.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	snap := testSnapshot()

	existingData, err := json.Marshal(snap)
	s.Require().NoError(err)

	updated := testSnapshot()
	updated.Metadata.Description = "now with a description"
	updatedData, err := json.Marshal(updated)
	s.Require().NoError(err)

	s.mock.ExpectGet("rotation:rot-1").SetVal(string(existingData))

	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("rotation:rot-1", updatedData, 0).SetVal("OK")
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Update(ctx, updated))
}

func (s *RedisRepoTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("rotation:rot-1").RedisNil()

	err := s.repo.Update(ctx, testSnapshot())
	s.Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()
	snap := testSnapshot()

	data, err := json.Marshal(snap)
	s.Require().NoError(err)

	s.mock.ExpectGet("rotation:rot-1").SetVal(string(data))

	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("rotation:rot-1").SetVal(1)
	s.mock.ExpectSRem("rotations:all", "rot-1").SetVal(1)
	s.mock.ExpectSRem("class:Warrior:rotations", "rot-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Delete(ctx, "rot-1"))
}

func (s *RedisRepoTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("rotation:missing").RedisNil()

	err := s.repo.Delete(ctx, "missing")
	s.Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetByClass() {
	ctx := context.Background()
	snap := testSnapshot()

	data, err := json.Marshal(snap)
	s.Require().NoError(err)

	s.mock.ExpectSMembers("class:Warrior:rotations").SetVal([]string{"rot-1"})
	s.mock.ExpectMGet("rotation:rot-1").SetVal([]interface{}{string(data)})

	snaps, err := s.repo.GetByClass(ctx, "Warrior")
	s.Require().NoError(err)
	s.Require().Len(snaps, 1)
	s.Equal("rot-1", snaps[0].ID)
}

func (s *RedisRepoTestSuite) TestGetByClass_Empty() {
	ctx := context.Background()

	s.mock.ExpectSMembers("class:Mage:rotations").SetVal([]string{})

	snaps, err := s.repo.GetByClass(ctx, "Mage")
	s.Require().NoError(err)
	s.Empty(snaps)
}

func (s *RedisRepoTestSuite) TestList_SkipsDeletedEntries() {
	ctx := context.Background()
	snap := testSnapshot()

	data, err := json.Marshal(snap)
	s.Require().NoError(err)

	// rot-2 is still indexed but its key is gone
	s.mock.ExpectSMembers("rotations:all").SetVal([]string{"rot-1", "rot-2"})
	s.mock.ExpectMGet("rotation:rot-1", "rotation:rot-2").SetVal([]interface{}{string(data), nil})

	snaps, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(snaps, 1)
	s.Equal("rot-1", snaps[0].ID)
}
