// Package language resolves the transcription language a user picks.
//
// Input may be a BCP-47 tag ("ar-SA"), an ISO 639-1/639-2 code, an English
// word ("arabic") or a selector label such as "Arabic (ar-SA)". Known
// languages map to the regional tag recognition engines expect; anything else
// is parsed as BCP-47. The ISO 639-1 base code names output files.
package language
