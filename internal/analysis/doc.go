// Package analysis derives secondary series from an analysed run: angle
// combinations for resonances, mean motions and period ratios, median
// filtering, precession rates, spectra and phase portraits.
//
//   - [ResonantAngle]: j:j-dj mean-motion resonant argument of two orbits
//   - [PeriodRatio]: mass-corrected period ratio of neighbouring orbits
//   - [MedianFilter]: zero-padded running median
//   - [PrecessionRate]: median-filtered rate of the precession angle
//   - [DominantFrequency]: strongest spectral peak via FFT
//   - [PortraitToASCII]: scatter of two series on a character grid
//
// # Resonance Check
//
//	phi := analysis.ResonantAngle(2, 1, res.Elements[0], res.Elements[1])
//	// a librating phi stays within a band of [0, 2π)
package analysis
