package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/naka-gawa/github-repos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchRepositories(ctx context.Context, username string) ([]*domain.Repository, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Repository), args.Error(1)
}

// mockSink records emitted results.
type mockSink struct {
	mock.Mock
}

func (m *mockSink) Emit(username string, repos []*domain.Repository) error {
	args := m.Called(username, repos)
	return args.Error(0)
}

func TestRepositoryFetcher_Fetch(t *testing.T) {
	repos := []*domain.Repository{
		{Name: "hello-world", StargazersCount: 42},
		{Name: "Spoon-Knife", StargazersCount: 7},
	}

	testCases := []struct {
		name        string
		mockRepos   []*domain.Repository
		mockErr     error
		sinkErr     error
		expectEmit  bool
		expectError bool
	}{
		{
			name:       "happy path - emits the listing once",
			mockRepos:  repos,
			expectEmit: true,
		},
		{
			name:        "error case - gateway fails, nothing is emitted",
			mockErr:     errors.New("github api error"),
			expectError: true,
		},
		{
			name:        "error case - sink fails",
			mockRepos:   repos,
			sinkErr:     errors.New("write failed"),
			expectEmit:  true,
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := new(mockFetcher)
			sink := new(mockSink)
			fetcher.On("FetchRepositories", mock.Anything, "octocat").Return(tc.mockRepos, tc.mockErr).Once()
			if tc.expectEmit {
				sink.On("Emit", "octocat", tc.mockRepos).Return(tc.sinkErr).Once()
			}

			uc := NewRepositoryFetcher(fetcher, sink, log.New(io.Discard, "", 0))
			result, err := uc.Fetch(context.Background(), "octocat")

			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.mockRepos, result)
			}
			fetcher.AssertExpectations(t)
			sink.AssertExpectations(t)
			if !tc.expectEmit {
				sink.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestRepositoryFetcher_FetchAll(t *testing.T) {
	t.Run("each user is fetched and emitted independently", func(t *testing.T) {
		fetcher := new(mockFetcher)
		sink := new(mockSink)
		a := []*domain.Repository{{Name: "a", StargazersCount: 1}}
		b := []*domain.Repository{{Name: "b", StargazersCount: 2}}
		fetcher.On("FetchRepositories", mock.Anything, "alice").Return(a, nil).Once()
		fetcher.On("FetchRepositories", mock.Anything, "bob").Return(b, nil).Once()
		sink.On("Emit", "alice", a).Return(nil).Once()
		sink.On("Emit", "bob", b).Return(nil).Once()

		uc := NewRepositoryFetcher(fetcher, sink, log.New(io.Discard, "", 0))
		assert.NoError(t, uc.FetchAll(context.Background(), []string{"alice", "bob"}))

		fetcher.AssertExpectations(t)
		sink.AssertExpectations(t)
	})

	t.Run("a failure is returned and not emitted", func(t *testing.T) {
		fetcher := new(mockFetcher)
		sink := new(mockSink)
		a := []*domain.Repository{{Name: "a", StargazersCount: 1}}
		fetchErr := errors.New("not found")
		fetcher.On("FetchRepositories", mock.Anything, "alice").Return(a, nil).Maybe()
		fetcher.On("FetchRepositories", mock.Anything, "ghost").Return(nil, fetchErr).Once()
		sink.On("Emit", "alice", a).Return(nil).Maybe()

		uc := NewRepositoryFetcher(fetcher, sink, log.New(io.Discard, "", 0))
		err := uc.FetchAll(context.Background(), []string{"alice", "ghost"})

		assert.ErrorIs(t, err, fetchErr)
		sink.AssertNotCalled(t, "Emit", "ghost", mock.Anything)
		fetcher.AssertExpectations(t)
	})

	t.Run("no users", func(t *testing.T) {
		fetcher := new(mockFetcher)
		sink := new(mockSink)
		uc := NewRepositoryFetcher(fetcher, sink, log.New(io.Discard, "", 0))
		assert.NoError(t, uc.FetchAll(context.Background(), nil))
		fetcher.AssertNotCalled(t, "FetchRepositories", mock.Anything, mock.Anything)
	})
}
