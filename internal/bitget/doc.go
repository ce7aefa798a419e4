// Package bitget provides a signed REST client for the Bitget mix
// (USDT futures) V2 API.
//
// Authentication: every request carries HMAC-SHA256 headers computed over
// timestamp + method + requestPath + body with the account secret, plus the
// access key and passphrase.
//
// Conventions:
//   - Success is HTTP 2xx AND envelope code "00000"; everything else is a
//     typed error (TransportError, APIError, ParseError)
//   - History payloads arrive as bare arrays or wrapped objects; decoding
//     tries an ordered table of wrapper keys
//   - Records are alias-tolerant maps: the same logical value may live
//     under several field names across API revisions
package bitget
