package clienttype

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "gmarm/pkg/domain-errors"
)

type stubSource struct {
	mu       sync.Mutex
	calls    int
	failures int
	configs  []Config
}

func (s *stubSource) GetClientTypeConfig(context.Context) ([]Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failures {
		return nil, errors.New("backend unreachable")
	}
	return s.configs, nil
}

type RegistrySuite struct {
	suite.Suite
	source *stubSource
	slept  []time.Duration
	reg    *Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.source = &stubSource{configs: []Config{
		{Name: "Civil", Code: CodeCivil, TypeID: 11},
		{Name: "Militar Fuerza Terrestre", Code: "MFT", TypeID: 12, IsMilitary: true, RequiresIssfaCode: true, TreatAsCivilWhenPassive: true},
		{Name: "Militar Fuerza Naval", Code: "MFN", TypeID: 13, IsMilitary: true},
		{Name: "Deportista", Code: CodeAthlete, TypeID: 18},
	}}
	s.slept = nil
	s.reg = NewRegistry(s.source, WithSleep(func(_ context.Context, d time.Duration) error {
		s.slept = append(s.slept, d)
		return nil
	}))
}

// =============================================================================
// Load
// =============================================================================

func (s *RegistrySuite) TestLoad() {
	s.Run("first attempt succeeds", func() {
		table, err := s.reg.Load(context.Background())
		s.Require().NoError(err)
		s.Len(table, 4)
		s.True(s.reg.Loaded())
		s.Empty(s.slept)
	})

	s.Run("recovers on the third retry", func() {
		s.SetupTest()
		s.source.failures = 3

		_, err := s.reg.Load(context.Background())
		s.Require().NoError(err)
		s.Equal(4, s.source.calls)
		s.Equal([]time.Duration{2 * time.Second, 4 * time.Second, 6 * time.Second}, s.slept)
	})

	s.Run("gives up after three retries and serves the fallback", func() {
		s.SetupTest()
		s.source.failures = 10

		_, err := s.reg.Load(context.Background())
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConfigUnavailable))
		s.Contains(err.Error(), "backend unreachable")
		s.Equal(4, s.source.calls)
		s.False(s.reg.Loaded())
		s.Equal(err, s.reg.LastError())

		code, err := s.reg.ResolveCode("Compañía de Seguridad")
		s.Require().NoError(err)
		s.Equal(CodeCompany, code)
	})

	s.Run("cancelled wait stops retrying", func() {
		s.SetupTest()
		s.source.failures = 10
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		reg := NewRegistry(s.source)

		_, err := reg.Load(ctx)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConfigUnavailable))
		s.ErrorIs(err, context.Canceled)
		s.Equal(1, s.source.calls)
	})

	s.Run("empty table counts as a failure", func() {
		s.SetupTest()
		s.source.configs = nil

		_, err := s.reg.Load(context.Background())
		s.Require().Error(err)
		s.Len(s.slept, 3)
	})
}

func (s *RegistrySuite) TestStart() {
	s.reg.Start(context.Background())
	s.Eventually(s.reg.Loaded, time.Second, 5*time.Millisecond)
}

// =============================================================================
// Queries
// =============================================================================

func (s *RegistrySuite) TestResolveCode() {
	s.Run("answers from fallback before load", func() {
		code, err := s.reg.ResolveCode("militar fuerza aerea")
		s.Require().NoError(err)
		s.Equal("MFA", code)
	})

	s.Run("loaded table wins over fallback", func() {
		_, err := s.reg.Load(context.Background())
		s.Require().NoError(err)
		cfg, err := s.reg.Lookup("CIVIL")
		s.Require().NoError(err)
		s.Equal(11, cfg.TypeID)
	})

	s.Run("unknown type is a named error", func() {
		_, err := s.reg.ResolveCode("Coleccionista")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConfigUnavailable))
	})
}

func (s *RegistrySuite) TestEffective() {
	_, err := s.reg.Load(context.Background())
	s.Require().NoError(err)

	s.Run("passive uniformed with flag is civil", func() {
		cfg, err := s.reg.Effective("Militar Fuerza Terrestre", StatusPassive)
		s.Require().NoError(err)
		s.True(cfg.IsCivil())
		s.Equal(11, cfg.TypeID)
	})

	s.Run("active uniformed keeps its type", func() {
		cfg, err := s.reg.Effective("Militar Fuerza Terrestre", StatusActive)
		s.Require().NoError(err)
		s.Equal("MFT", cfg.Code)
	})

	s.Run("passive without flag keeps its type", func() {
		cfg, err := s.reg.Effective("Militar Fuerza Naval", StatusPassive)
		s.Require().NoError(err)
		s.Equal("MFN", cfg.Code)
	})

	s.Run("status ignored for non-uniformed", func() {
		cfg, err := s.reg.Effective("Deportista", StatusPassive)
		s.Require().NoError(err)
		s.True(cfg.IsAthlete())
	})
}

func (s *RegistrySuite) TestFallbackTable() {
	var military int
	for _, cfg := range Fallback() {
		if cfg.IsMilitary {
			military++
			s.True(cfg.RequiresIssfaCode)
		}
	}
	s.Equal(4, military)
	s.Len(Fallback(), 8)
}

func TestParseServiceStatus(t *testing.T) {
	cases := map[string]ServiceStatus{"ACTIVO": StatusActive, "PASSIVE": StatusPassive, "": "", "x": ""}
	for in, want := range cases {
		if got := ParseServiceStatus(in); got != want {
			t.Errorf("ParseServiceStatus(%q) = %q, want %q", in, got, want)
		}
	}
}
