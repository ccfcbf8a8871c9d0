// Package naver is a client for the Naver Search API, covering the news,
// blog, web (webkr), and book verticals. A [Client] is built from
// [Credentials] (explicit values or [CredentialsFromEnv]) and fails fast at
// construction when they are missing; the secrets are never printed by any
// fmt verb. Searches run either blocking ([Client.Results],
// [Client.RawResults]) or under a caller context ([Client.ResultsContext],
// [Client.RawResultsContext]). The Raw variants return the API envelope
// untouched, the plain variants normalize items with [CleanResults].
// Failures surface as typed errors: sentinels for validation, [StatusError]
// for non-200 responses, and wrapped transport or decode errors.
package naver
