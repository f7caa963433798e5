package skill_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docskill"
	"github.com/fwojciec/docskill/mock"
	"github.com/fwojciec/docskill/skill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{url: "https://hub.phantombuster.com/docs", want: "phantombuster"},
		{url: "https://docs.n8n.io/", want: "n8n"},
		{url: "https://getsuperapp.com", want: "getsuperapp"},
		{url: "https://www.stripe.com/docs", want: "stripe"},
		{url: "https://docs.example.co.uk/", want: "example"},
		{url: "https://API.Example.com:8443/x", want: "example"},
		{url: "http://localhost:3000/docs", want: "localhost"},
		{url: "http://127.0.0.1:8080/", want: "127-0-0-1"},
		{url: "https://www.getsuperapp.io/docs", want: "getsuperapp"},
		{url: "http://[::1]:8080/", want: "0-0-0-0-0-0-0-1"},
		{url: "http://[2001:db8::ff]/", want: "2001-db8-0-0-0-0-0-ff"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			got, err := skill.ExtractToken(tt.url)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "not a url", "https://", "http://[::1"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			t.Parallel()

			_, err := skill.ExtractToken(bad)

			assert.Equal(t, docskill.EINVALID, docskill.ErrorCode(err))
		})
	}
}

func TestHasMarketingPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  bool
	}{
		{token: "getsuperapp", want: true},
		{token: "trynotion", want: true},
		{token: "mystripe", want: true},
		{token: "heymarket", want: true},
		{token: "phantombuster", want: false},
		{token: "n8n", want: false},
		{token: "myapp", want: true},
		{token: "getit", want: false},  // residual shorter than 3
		{token: "myab", want: false},   // residual not longer than prefix
		{token: "use", want: false},    // prefix only
		{token: "usage", want: false},  // residual as long as prefix
		{token: "gopher", want: true},  // heuristic only; the model decides
		{token: "stripe", want: false}, // no prefix
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, skill.HasMarketingPrefix(tt.token, skill.DefaultPrefixes))
		})
	}

	t.Run("custom prefixes", func(t *testing.T) {
		t.Parallel()
		assert.True(t, skill.HasMarketingPrefix("heyjude", []string{"hey"}))
		assert.False(t, skill.HasMarketingPrefix("getsuperapp", []string{"hey"}))
		assert.False(t, skill.HasMarketingPrefix("getsuperapp", nil))
	})
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	reply := func(text string) *mock.Gateway {
		return &mock.Gateway{
			SendFn: func(_ context.Context, _ *docskill.Request) (*docskill.Response, error) {
				return &docskill.Response{Text: text}, nil
			},
		}
	}

	t.Run("cleans marketing prefix through gateway", func(t *testing.T) {
		t.Parallel()

		var got *docskill.Request
		r := &skill.Resolver{Gateway: &mock.Gateway{
			SendFn: func(_ context.Context, req *docskill.Request) (*docskill.Response, error) {
				got = req
				return &docskill.Response{Text: "SuperApp\n"}, nil
			},
		}}

		id, err := r.Resolve(context.Background(), "https://getsuperapp.com/docs")

		require.NoError(t, err)
		assert.Equal(t, "getsuperapp", id.RawToken)
		assert.Equal(t, "superapp", id.Token)
		assert.Equal(t, "use-superapp", id.Name)
		assert.NoError(t, id.CleanupErr)
		require.NotNil(t, got)
		assert.Contains(t, got.Prompt, "getsuperapp")
		assert.NotEmpty(t, got.System)
	})

	t.Run("www prefix and io suffix are dropped before cleanup", func(t *testing.T) {
		t.Parallel()

		r := &skill.Resolver{Gateway: reply("superapp")}

		id, err := r.Resolve(context.Background(), "https://www.getsuperapp.io/docs")

		require.NoError(t, err)
		assert.Equal(t, "getsuperapp", id.RawToken)
		assert.Equal(t, "use-superapp", id.Name)
		assert.NoError(t, id.CleanupErr)
	})

	t.Run("does not call gateway for clean tokens", func(t *testing.T) {
		t.Parallel()

		r := &skill.Resolver{Gateway: &mock.Gateway{
			SendFn: func(context.Context, *docskill.Request) (*docskill.Response, error) {
				t.Fatal("unexpected gateway call")
				return nil, nil
			},
		}}

		for url, name := range map[string]string{
			"https://hub.phantombuster.com": "use-phantombuster",
			"https://docs.n8n.io":           "use-n8n",
		} {
			id, err := r.Resolve(context.Background(), url)
			require.NoError(t, err)
			assert.Equal(t, name, id.Name)
			assert.NoError(t, id.CleanupErr)
		}
	})

	t.Run("falls back to raw token without provider", func(t *testing.T) {
		t.Parallel()

		r := &skill.Resolver{Gateway: docskill.NopGateway{}}

		id, err := r.Resolve(context.Background(), "https://getsuperapp.com")

		require.NoError(t, err)
		assert.Equal(t, "use-getsuperapp", id.Name)
		assert.Equal(t, docskill.ENOTCONFIGURED, docskill.ErrorCode(id.CleanupErr))
	})

	t.Run("nil gateway behaves like no provider", func(t *testing.T) {
		t.Parallel()

		id, err := (&skill.Resolver{}).Resolve(context.Background(), "https://trynotion.com")

		require.NoError(t, err)
		assert.Equal(t, "use-trynotion", id.Name)
		assert.Equal(t, docskill.ENOTCONFIGURED, docskill.ErrorCode(id.CleanupErr))
	})

	t.Run("falls back to raw token on gateway failure", func(t *testing.T) {
		t.Parallel()

		gwErr := docskill.Errorf(docskill.ERATELIMIT, "slow down")
		r := &skill.Resolver{Gateway: &mock.Gateway{
			SendFn: func(context.Context, *docskill.Request) (*docskill.Response, error) {
				return nil, gwErr
			},
		}}

		id, err := r.Resolve(context.Background(), "https://getsuperapp.com")

		require.NoError(t, err)
		assert.Equal(t, "use-getsuperapp", id.Name)
		assert.True(t, errors.Is(id.CleanupErr, gwErr))
	})

	t.Run("falls back to raw token on unusable reply", func(t *testing.T) {
		t.Parallel()

		r := &skill.Resolver{Gateway: reply("  ...  ")}

		id, err := r.Resolve(context.Background(), "https://getsuperapp.com")

		require.NoError(t, err)
		assert.Equal(t, "use-getsuperapp", id.Name)
		assert.Equal(t, docskill.EPROVIDER, docskill.ErrorCode(id.CleanupErr))
	})

	t.Run("sanitizes quoted reply", func(t *testing.T) {
		t.Parallel()

		r := &skill.Resolver{Gateway: reply("`notion`")}

		id, err := r.Resolve(context.Background(), "https://trynotion.com")

		require.NoError(t, err)
		assert.Equal(t, "use-notion", id.Name)
	})

	t.Run("uses configured prefixes", func(t *testing.T) {
		t.Parallel()

		r := &skill.Resolver{Gateway: reply("acme"), Prefixes: []string{"the"}}

		id, err := r.Resolve(context.Background(), "https://theacme.io")

		require.NoError(t, err)
		assert.Equal(t, "use-acme", id.Name)
	})

	t.Run("invalid seed is an error", func(t *testing.T) {
		t.Parallel()

		_, err := (&skill.Resolver{}).Resolve(context.Background(), "://")

		assert.Equal(t, docskill.EINVALID, docskill.ErrorCode(err))
	})
}
