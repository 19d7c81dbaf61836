package riptide

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type JSONConverterSuite struct {
	suite.Suite
}

func TestJSONConverterSuite(t *testing.T) {
	suite.Run(t, new(JSONConverterSuite))
}

func (s *JSONConverterSuite) TestConvert_DecodesValidBody() {
	var out accountPayload
	err := JSONConverter().Convert(&Response{Body: []byte(`{"name":"ada"}`)}, &out)
	s.Require().NoError(err)
	s.Equal("ada", out.Name)
}

func (s *JSONConverterSuite) TestConvert_EmptyBodyErrors() {
	var out accountPayload
	err := JSONConverter().Convert(&Response{}, &out)
	s.Error(err)
}

func (s *JSONConverterSuite) TestConvert_MalformedJSONErrors() {
	var out accountPayload
	err := JSONConverter().Convert(&Response{Body: []byte("not json")}, &out)
	s.Error(err)
}
