// Package mock provides deterministic test doubles for the ai interfaces.
// Vectors are derived from input-text hashes so identical text always embeds
// to the identical vector, which makes ranking assertions stable.
package mock
