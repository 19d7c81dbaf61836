package riptide

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PredicateSuite struct {
	suite.Suite
}

func TestPredicateSuite(t *testing.T) {
	suite.Run(t, new(PredicateSuite))
}

func (s *PredicateSuite) TestHasFields_MatchesWhenAllFieldsPresent() {
	raw := []byte(`{"error": {"code": "AUTH"}, "status": "failed"}`)
	s.Assert().True(HasFields("error.code", "status")(raw))
}

func (s *PredicateSuite) TestHasFields_FailsWhenAnyFieldMissing() {
	raw := []byte(`{"error": {"code": "AUTH"}}`)
	s.Assert().False(HasFields("error.code", "status")(raw))
}

func (s *PredicateSuite) TestHasFields_MatchesWithNoPaths() {
	s.Assert().True(HasFields()([]byte(`{}`)))
}

func (s *PredicateSuite) TestFieldEquals_MatchesExactStringValue() {
	raw := []byte(`{"error": {"code": "AUTH"}}`)
	s.Assert().True(FieldEquals("error.code", "AUTH")(raw))
}

func (s *PredicateSuite) TestFieldEquals_FailsOnWrongValue() {
	raw := []byte(`{"error": {"code": "AUTH"}}`)
	s.Assert().False(FieldEquals("error.code", "RATE_LIMIT")(raw))
}

func (s *PredicateSuite) TestFieldEquals_FailsOnNonStringField() {
	raw := []byte(`{"count": 42}`)
	s.Assert().False(FieldEquals("count", "42")(raw))
}

func (s *PredicateSuite) TestAnd_MatchesWhenAllMatch() {
	raw := []byte(`{"error": {"code": "AUTH"}, "status": "failed"}`)
	p := And(HasFields("error.code"), FieldEquals("status", "failed"))
	s.Assert().True(p(raw))
}

func (s *PredicateSuite) TestAnd_FailsWhenAnyFails() {
	raw := []byte(`{"error": {"code": "AUTH"}, "status": "ok"}`)
	p := And(HasFields("error.code"), FieldEquals("status", "failed"))
	s.Assert().False(p(raw))
}

func (s *PredicateSuite) TestAnd_MatchesWithNoPredicates() {
	s.Assert().True(And()([]byte(`{}`)))
}

func (s *PredicateSuite) TestOr_MatchesWhenAnyMatches() {
	raw := []byte(`{"error": {"code": "AUTH"}}`)
	p := Or(FieldEquals("error.code", "RATE_LIMIT"), FieldEquals("error.code", "AUTH"))
	s.Assert().True(p(raw))
}

func (s *PredicateSuite) TestOr_FailsWhenNoneMatch() {
	raw := []byte(`{"error": {"code": "AUTH"}}`)
	p := Or(FieldEquals("error.code", "RATE_LIMIT"), HasFields("missing"))
	s.Assert().False(p(raw))
}

func (s *PredicateSuite) TestOr_FailsWithNoPredicates() {
	s.Assert().False(Or()([]byte(`{}`)))
}

func (s *PredicateSuite) TestComposedPredicateAcrossResponses() {
	p := Or(
		And(HasFields("error.code"), FieldEquals("error.code", "AUTH")),
		FieldEquals("type", "rate_limit_error"),
	)

	s.Assert().True(p([]byte(`{"error": {"code": "AUTH"}}`)))
	s.Assert().True(p([]byte(`{"type": "rate_limit_error"}`)))
	s.Assert().False(p([]byte(`{"foo": "bar"}`)))
}

func (s *PredicateSuite) TestMatchesNavigator() {
	nav := MatchesNavigator(FieldEquals("status", "retry"))
	resp := &Response{Body: []byte(`{"status": "retry"}`)}
	matched, ok := nav.Extract(resp)
	s.Require().True(ok)
	s.Assert().True(matched)
}

func (s *PredicateSuite) TestMatchesNavigator_AbsentOnUnparseableBody() {
	nav := MatchesNavigator(FieldEquals("status", "retry"))
	resp := &Response{Body: []byte("not json")}
	_, ok := nav.Extract(resp)
	s.Assert().False(ok)
}
