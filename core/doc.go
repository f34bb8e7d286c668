// Package core provides the shared request pipeline used by every Watson
// service client in this module.
//
// # Architecture
//
// Every service package (assistantv2, discoveryv2,
// naturallanguageunderstandingv1, comparecomplyv1) is a thin layer over three
// pieces from this package:
//
//   - BaseService: endpoint, version date, authenticator, transport and
//     default headers, fixed at construction
//   - RequestBuilder: method, path template, query, headers and body for one call
//   - Invoke: the generic typed call that authenticates, sends, maps errors and
//     decodes the result into a DetailedResponse
//
// # Quick Start
//
// Creating a client with an IAM API key:
//
//	nlu, err := naturallanguageunderstandingv1.NewNaturalLanguageUnderstandingV1("2019-07-12",
//	    core.WithIAMAPIKey(os.Getenv("NLU_APIKEY")),
//	)
//
// Creating a client from the environment or an ibm-credentials.env file:
//
//	assistant, err := assistantv2.NewAssistantV2("2019-02-28")
//
// # Authentication
//
// Exactly one Authenticator is attached to a service: a BasicAuthenticator
// (username and password) or a BearerTokenAuthenticator backed by a
// TokenProvider. IAMTokenManager is the TokenProvider that exchanges an API
// key for access tokens and refreshes them before they expire.
//
// # Errors
//
// Missing required arguments fail with *ArgumentError before any request is
// sent. Transport failures are returned as *NetworkError and non-2xx replies
// as one of the typed service errors built by ErrorFromStatusCode.
package core
