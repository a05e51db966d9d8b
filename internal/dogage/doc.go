// Package dogage converts a dog's elapsed lifetime into a human-equivalent
// age using the logarithmic formula 16*ln(years) + 31.
package dogage
