package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCorpusError(t *testing.T) {
	cause := errors.New("file not found")
	corpusErr := NewCorpusError("load", "/path/to/corpus.yml", cause)

	expectedMsg := "corpus load failed for '/path/to/corpus.yml': file not found"
	if corpusErr.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, corpusErr.Error())
	}

	if corpusErr.Op != "load" {
		t.Errorf("Expected Op 'load', got '%s'", corpusErr.Op)
	}

	if corpusErr.Path != "/path/to/corpus.yml" {
		t.Errorf("Expected Path '/path/to/corpus.yml', got '%s'", corpusErr.Path)
	}

	if corpusErr.Cause != cause {
		t.Errorf("Expected Cause to be the original error")
	}
}

func TestCorpusErrorUnwrap(t *testing.T) {
	cause := errors.New("original error")
	corpusErr := NewCorpusError("save", "/path", cause)

	unwrapped := corpusErr.Unwrap()
	if unwrapped != cause {
		t.Errorf("Expected unwrapped error to be the original cause")
	}

	if !errors.Is(corpusErr, cause) {
		t.Error("Expected errors.Is to find the cause in the error chain")
	}
}

func TestQueryError(t *testing.T) {
	cause := errors.New("invalid query")
	queryErr := NewQueryError("test query", cause)

	expectedMsg := "query failed for 'test query': invalid query"
	if queryErr.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, queryErr.Error())
	}

	if queryErr.Query != "test query" {
		t.Errorf("Expected Query 'test query', got '%s'", queryErr.Query)
	}

	if queryErr.Cause != cause {
		t.Errorf("Expected Cause to be the original error")
	}
}

func TestQueryErrorUnwrap(t *testing.T) {
	cause := errors.New("original error")
	queryErr := NewQueryError("query", cause)

	unwrapped := queryErr.Unwrap()
	if unwrapped != cause {
		t.Errorf("Expected unwrapped error to be the original cause")
	}

	if !errors.Is(queryErr, cause) {
		t.Error("Expected errors.Is to find the cause in the error chain")
	}
}

func TestErrorChaining(t *testing.T) {
	originalErr := errors.New("root cause")
	corpusErr := NewCorpusError("load", "/path", originalErr)
	queryErr := NewQueryError("query", corpusErr)

	if !errors.Is(queryErr, originalErr) {
		t.Error("Expected errors.Is to find the root cause through the error chain")
	}

	if !errors.Is(queryErr, corpusErr) {
		t.Error("Expected errors.Is to find the corpus error in the chain")
	}
}

func TestErrorWithNilCause(t *testing.T) {
	corpusErr := NewCorpusError("test", "/path", nil)

	expectedMsg := "corpus test failed for '/path': <nil>"
	if corpusErr.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, corpusErr.Error())
	}

	if corpusErr.Unwrap() != nil {
		t.Error("Expected Unwrap() to return nil when cause is nil")
	}
}

func TestErrorWithEmptyFields(t *testing.T) {
	cause := errors.New("test error")
	corpusErr := NewCorpusError("", "", cause)

	expectedMsg := "corpus  failed for '': test error"
	if corpusErr.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, corpusErr.Error())
	}

	queryErr := NewQueryError("", cause)
	expectedMsg = "query failed for '': test error"
	if queryErr.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, queryErr.Error())
	}
}

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("test cause")
	corpusErr := NewCorpusError("load", "/test/path", cause)

	formatted := fmt.Sprintf("%s", corpusErr)
	expected := "corpus load failed for '/test/path': test cause"
	if formatted != expected {
		t.Errorf("Expected formatted string '%s', got '%s'", expected, formatted)
	}

	formatted = fmt.Sprintf("%v", corpusErr)
	if formatted != expected {
		t.Errorf("Expected formatted string '%s', got '%s'", expected, formatted)
	}

	formatted = fmt.Sprintf("%+v", corpusErr)
	if formatted != expected {
		t.Errorf("Expected formatted string '%s', got '%s'", expected, formatted)
	}
}

func TestErrorTypeAssertion(t *testing.T) {
	cause := errors.New("test")
	corpusErr := NewCorpusError("load", "/path", cause)
	queryErr := NewQueryError("query", cause)

	var err error

	err = corpusErr
	if _, ok := err.(*CorpusError); !ok {
		t.Error("Expected CorpusError to be assertable to *CorpusError")
	}

	err = queryErr
	if _, ok := err.(*QueryError); !ok {
		t.Error("Expected QueryError to be assertable to *QueryError")
	}

	if _, ok := err.(*CorpusError); ok {
		t.Error("Expected QueryError not to be assertable to *CorpusError")
	}
}

func TestErrorEquality(t *testing.T) {
	cause1 := errors.New("cause1")
	cause2 := errors.New("cause2")

	corpusErr1 := NewCorpusError("load", "/path", cause1)
	corpusErr2 := NewCorpusError("load", "/path", cause1)
	corpusErr3 := NewCorpusError("save", "/path", cause1)
	corpusErr4 := NewCorpusError("load", "/other", cause1)
	corpusErr5 := NewCorpusError("load", "/path", cause2)

	if corpusErr1 == corpusErr2 {
		t.Error("Expected different error instances not to be equal")
	}

	if !errors.Is(corpusErr1, cause1) {
		t.Error("Expected errors.Is to find the cause")
	}

	if errors.Is(corpusErr1, cause2) {
		t.Error("Expected errors.Is not to find different cause")
	}

	if corpusErr1.Op == corpusErr3.Op && corpusErr1.Path == corpusErr3.Path && corpusErr1.Cause == corpusErr3.Cause {
		t.Error("Expected corpusErr3 to have different Op")
	}

	if corpusErr1.Path == corpusErr4.Path {
		t.Error("Expected corpusErr4 to have different Path")
	}

	if corpusErr1.Cause == corpusErr5.Cause {
		t.Error("Expected corpusErr5 to have different Cause")
	}
}

func TestComplexErrorScenarios(t *testing.T) {
	fileErr := errors.New("permission denied")
	corpusErr := NewCorpusError("load", "/etc/hybridrank/corpus.yml", fileErr)

	queryErr := NewQueryError("apple", corpusErr)

	expectedCorpusMsg := "corpus load failed for '/etc/hybridrank/corpus.yml': permission denied"
	if corpusErr.Error() != expectedCorpusMsg {
		t.Errorf("Expected corpus error message '%s', got '%s'", expectedCorpusMsg, corpusErr.Error())
	}

	expectedQueryMsg := "query failed for 'apple': " + expectedCorpusMsg
	if queryErr.Error() != expectedQueryMsg {
		t.Errorf("Expected query error message '%s', got '%s'", expectedQueryMsg, queryErr.Error())
	}

	if !errors.Is(queryErr, fileErr) {
		t.Error("Expected to find original file error in query error chain")
	}

	if !errors.Is(queryErr, corpusErr) {
		t.Error("Expected to find corpus error in query error chain")
	}
}
