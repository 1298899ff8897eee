// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

package bios

import (
	"math"

	"github.com/jetsetilly/gopheradvance/curated"
)

// divide returns the quotient, remainder and absolute quotient. the
// quotient is rounded towards zero
func divide(num int32, denom int32) (int32, int32, int32, error) {
	if denom == 0 {
		return 0, 0, 0, curated.Errorf(DivideByZero)
	}
	q := num / denom
	m := num % denom
	a := q
	if a < 0 {
		a = -a
	}
	return q, m, a, nil
}

func div(_ *HLE, r *Registers, _ Bus) (Result, error) {
	q, m, a, err := divide(int32(r[0]), int32(r[1]))
	if err != nil {
		return Result{}, err
	}
	r[0] = uint32(q)
	r[1] = uint32(m)
	r[3] = uint32(a)
	return Result{}, nil
}

// divArm is the same as div but with the arguments swapped
func divArm(_ *HLE, r *Registers, _ Bus) (Result, error) {
	q, m, a, err := divide(int32(r[1]), int32(r[0]))
	if err != nil {
		return Result{}, err
	}
	r[0] = uint32(q)
	r[1] = uint32(m)
	r[3] = uint32(a)
	return Result{}, nil
}

// isqrt returns the integer square root of v
func isqrt(v uint32) uint32 {
	s := uint32(math.Sqrt(float64(v)))

	// correct for any rounding in the floating point result
	for s*s > v {
		s--
	}
	for s < 0xffff && (s+1)*(s+1) <= v {
		s++
	}
	return s
}

func sqrt(_ *HLE, r *Registers, _ Bus) (Result, error) {
	r[0] = isqrt(r[0])
	return Result{}, nil
}

// angles are returned as a fraction of a full turn. 0x8000 is half a turn
const angleScale = 0x8000 / math.Pi

// arcTan takes a 1.14 fixed point tangent and returns an angle in the range
// -0x4000 to 0x4000
func arcTan(_ *HLE, r *Registers, _ Bus) (Result, error) {
	t := float64(int16(r[0])) / (1 << 14)
	a := int32(math.Atan(t) * angleScale)
	r[0] = uint32(a)
	return Result{}, nil
}

// arcTan2 takes 1.14 fixed point x and y values and returns an angle in the
// range 0x0000 to 0xffff
func arcTan2(_ *HLE, r *Registers, _ Bus) (Result, error) {
	x := float64(int16(r[0])) / (1 << 14)
	y := float64(int16(r[1])) / (1 << 14)
	a := math.Atan2(y, x)
	if a < 0 {
		a += 2 * math.Pi
	}
	r[0] = uint32(a*angleScale) & 0xffff
	return Result{}, nil
}

// objAffineSet calculates the 2x2 rotation/scaling matrices for sprites
//
// each source entry is eight bytes: x scale and y scale (8.8 fixed point),
// the angle (only the upper eight bits are used) and two bytes of padding.
// the four elements of the matrix are written as halfwords separated by the
// stride in r3
func objAffineSet(_ *HLE, r *Registers, bus Bus) (Result, error) {
	src := r[0]
	dest := r[1]
	count := r[2]
	stride := r[3]

	for i := uint32(0); i < count; i++ {
		sxv, err := read16(bus, src)
		if err != nil {
			return Result{}, err
		}
		syv, err := read16(bus, src+2)
		if err != nil {
			return Result{}, err
		}
		theta, err := read16(bus, src+4)
		if err != nil {
			return Result{}, err
		}
		src += 8

		sx := float64(int16(sxv)) / (1 << 8)
		sy := float64(int16(syv)) / (1 << 8)
		angle := float64(theta>>8) * 2 * math.Pi / 256
		sin := math.Sin(angle)
		cos := math.Cos(angle)

		m := [4]float64{
			cos * sx,
			-sin * sx,
			sin * sy,
			cos * sy,
		}

		for j, v := range m {
			if err := write16(bus, dest+uint32(j)*stride, uint16(int16(v*(1<<8)))); err != nil {
				return Result{}, err
			}
		}
		dest += 4 * stride
	}

	return Result{}, nil
}
