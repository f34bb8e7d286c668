package naturallanguageunderstandingv1

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoeZX/watson-go-sdk/core"
	"github.com/RoeZX/watson-go-sdk/internal/watsontest"
)

const testVersion = "2019-07-12"

func newTestNLU(t *testing.T, transport core.Transport) *NaturalLanguageUnderstandingV1 {
	t.Helper()
	n, err := NewNaturalLanguageUnderstandingV1(testVersion,
		core.WithURL("https://nlu.example.com/api"),
		core.WithBasicAuth("user", "pass"),
		core.WithTransport(transport),
	)
	require.NoError(t, err)
	return n
}

func TestNewNaturalLanguageUnderstandingV1EmptyVersion(t *testing.T) {
	_, err := NewNaturalLanguageUnderstandingV1("", core.WithBasicAuth("user", "pass"))
	var argErr *core.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "version", argErr.Parameter)
}

func TestNewNaturalLanguageUnderstandingV1FromEnvironment(t *testing.T) {
	t.Setenv(core.CredentialsFileEnv, "")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NATURAL_LANGUAGE_UNDERSTANDING_URL", "https://env.example.com/nlu")
	t.Setenv("NATURAL_LANGUAGE_UNDERSTANDING_APIKEY", "env-key")

	n, err := NewNaturalLanguageUnderstandingV1(testVersion)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/nlu", n.Service.URL())
	assert.Equal(t, core.AuthTypeIAM, n.Service.Authenticator().AuthenticationType())
}

func TestAnalyzeLanguageWithoutXpath(t *testing.T) {
	transport := watsontest.NewRecordingTransport(
		watsontest.JSONReply(http.StatusOK, `{"language":"fr","usage":{"text_characters":7}}`),
	)
	n := newTestNLU(t, transport)

	resp, err := n.Analyze(context.Background(), &AnalyzeOptions{
		Features: &Features{Keywords: &KeywordsOptions{Limit: core.Int64Ptr(3)}},
		Text:     core.StringPtr("Bonjour"),
		Language: core.StringPtr("fr"),
	})
	require.NoError(t, err)
	assert.Equal(t, "fr", *resp.Result.Language)
	assert.Equal(t, int64(7), *resp.Result.Usage.TextCharacters)

	req := transport.Last()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/v1/analyze", req.URL.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "service_name=natural-language-understanding;service_version=v1;operation_id=Analyze",
		req.Header.Get("X-IBMCloud-SDK-Analytics"))

	body := req.JSON()
	assert.Equal(t, "fr", body["language"])
	assert.NotContains(t, body, "xpath")
	assert.JSONEq(t, `{
		"features": {"keywords": {"limit": 3}},
		"text": "Bonjour",
		"language": "fr"
	}`, string(req.Body))
}

func TestAnalyzeOmitsEmptyStrings(t *testing.T) {
	transport := watsontest.NewRecordingTransport()
	n := newTestNLU(t, transport)

	_, err := n.Analyze(context.Background(), &AnalyzeOptions{
		Features:            &Features{Metadata: &MetadataOptions{}},
		URL:                 core.StringPtr("https://www.ibm.com"),
		HTML:                core.StringPtr(""),
		Clean:               core.BoolPtr(false),
		LimitTextCharacters: core.Int64Ptr(100),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"features": {"metadata": {}},
		"url": "https://www.ibm.com",
		"clean": false,
		"limit_text_characters": 100
	}`, string(transport.Last().Body))
}

func TestAnalyzeRequiresFeatures(t *testing.T) {
	transport := watsontest.NewRecordingTransport()
	n := newTestNLU(t, transport)

	_, err := n.Analyze(context.Background(), &AnalyzeOptions{Text: core.StringPtr("hi")})
	var argErr *core.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "Features", argErr.Parameter)
	assert.Equal(t, "Analyze", argErr.Operation)
	assert.Equal(t, "Features is required for Analyze", argErr.Error())
	assert.Equal(t, 0, transport.Len())
}

func TestAnalyzeUndecodableResultIsEmpty(t *testing.T) {
	transport := watsontest.NewRecordingTransport(
		watsontest.JSONReply(http.StatusOK, `{"language": ["not", "a", "string"]}`),
	)
	n := newTestNLU(t, transport)

	resp, err := n.Analyze(context.Background(), &AnalyzeOptions{
		Features: &Features{Sentiment: &SentimentOptions{}},
		Text:     core.StringPtr("hi"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Result)
	assert.Nil(t, resp.Result.Language)
	assert.NotEmpty(t, resp.RawResult)
}

func TestDeleteModelRequiresID(t *testing.T) {
	transport := watsontest.NewRecordingTransport()
	n := newTestNLU(t, transport)

	_, err := n.DeleteModel(context.Background(), &DeleteModelOptions{})
	var argErr *core.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "ModelID", argErr.Parameter)
	assert.Equal(t, 0, transport.Len())
}

func TestModelsAgainstServer(t *testing.T) {
	server := watsontest.NewServer()
	defer server.Close()

	n, err := NewNaturalLanguageUnderstandingV1(testVersion, core.WithURL(server.URL), core.WithBearerToken("tok"))
	require.NoError(t, err)
	ctx := context.Background()

	list, err := n.ListModels(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list.Result.Models, 1)
	assert.Equal(t, "en-news", *list.Result.Models[0].ModelID)
	assert.Equal(t, ModelStatusAvailable, *list.Result.Models[0].Status)

	deleted, err := n.DeleteModel(ctx, &DeleteModelOptions{ModelID: "en-news"})
	require.NoError(t, err)
	assert.Equal(t, "en-news", *deleted.Result.Deleted)

	_, err = n.DeleteModel(ctx, &DeleteModelOptions{ModelID: "en-news"})
	var nfErr *core.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "natural-language-understanding", nfErr.Service)
	assert.NotEmpty(t, nfErr.TransactionID)
}

func TestAnalyzeAgainstServer(t *testing.T) {
	server := watsontest.NewServer()
	defer server.Close()

	n, err := NewNaturalLanguageUnderstandingV1(testVersion, core.WithURL(server.URL), core.WithBasicAuth("user", "pass"))
	require.NoError(t, err)

	resp, err := n.Analyze(context.Background(), &AnalyzeOptions{
		Features: &Features{Keywords: &KeywordsOptions{}},
		Text:     core.StringPtr("IBM Watson analyzes unstructured text."),
	})
	require.NoError(t, err)
	assert.Equal(t, "en", *resp.Result.Language)

	var words []string
	for _, k := range resp.Result.Keywords {
		words = append(words, *k.Text)
	}
	assert.Equal(t, []string{"Watson", "analyzes", "unstructured", "text"}, words)
}
