package taueff

import "math"

// Positioned is implemented by anything with a direction in (eta, phi).
type Positioned interface {
	Eta() float64
	Phi() float64
}

// Position is a bare (eta, phi) direction.
type Position struct {
	eta, phi float64
}

// Pos returns the Position at the given coordinates, so that raw numbers can
// be passed wherever a Positioned is expected.
func Pos(eta, phi float64) Position {
	return Position{eta: eta, phi: phi}
}

func (p Position) Eta() float64 { return p.eta }
func (p Position) Phi() float64 { return p.phi }

// DeltaPhi returns p1-p2 reduced into (-pi, pi].
//
// Note that DeltaPhi(a, b) == -DeltaPhi(b, a) except when the difference
// lands on the boundary, where both orders give +pi.
func DeltaPhi(p1, p2 float64) float64 {
	res := p1 - p2
	if res > math.Pi || res <= -math.Pi {
		res = math.Mod(res, 2*math.Pi)
		// math.Mod keeps the sign of res, so res is now in (-2pi, 2pi).
		if res > math.Pi {
			res -= 2 * math.Pi
		} else if res <= -math.Pi {
			res += 2 * math.Pi
		}
	}
	return res
}

// DeltaR2 returns the squared distance between a and b in (eta, phi) space,
// with phi treated as periodic.
func DeltaR2(a, b Positioned) float64 {
	de := a.Eta() - b.Eta()
	dp := DeltaPhi(a.Phi(), b.Phi())
	return de*de + dp*dp
}

// DeltaR returns the distance between a and b in (eta, phi) space.
func DeltaR(a, b Positioned) float64 {
	return math.Sqrt(DeltaR2(a, b))
}
