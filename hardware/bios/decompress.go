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

import "github.com/jetsetilly/gopheradvance/curated"

// compression types found in the top nibble of the first header byte
const (
	compressionLZ77 = 0x10
	compressionRL   = 0x30
)

// readHeader returns the decompressed size from the four byte header
func readHeader(bus Bus, src uint32, typ uint8) (uint32, error) {
	hdr, err := read32(bus, src)
	if err != nil {
		return 0, err
	}
	if uint8(hdr)&0xf0 != typ {
		return 0, curated.Errorf(BadHeader, hdr)
	}
	return hdr >> 8, nil
}

// decompressLZ77 returns the data decompressed from the LZ77 stream at src
//
// the stream is a series of blocks, each preceded by a flag byte. the bits of
// the flag byte are used MSB first. a clear bit means the next byte is
// copied as is. a set bit means the next two bytes describe a run of bytes
// to copy from data already decompressed:
//
//	count = (b0 >> 4) + 3
//	disp  = ((b0 & 0x0f) << 8 | b1) + 1
func decompressLZ77(bus Bus, src uint32) ([]byte, error) {
	size, err := readHeader(bus, src, compressionLZ77)
	if err != nil {
		return nil, err
	}
	src += 4

	out := make([]byte, 0, size)

	for uint32(len(out)) < size {
		flags, err := read8(bus, src)
		if err != nil {
			return nil, err
		}
		src++

		for mask := uint8(0x80); mask != 0 && uint32(len(out)) < size; mask >>= 1 {
			if flags&mask == 0 {
				b, err := read8(bus, src)
				if err != nil {
					return nil, err
				}
				src++
				out = append(out, b)
				continue
			}

			b0, err := read8(bus, src)
			if err != nil {
				return nil, err
			}
			b1, err := read8(bus, src+1)
			if err != nil {
				return nil, err
			}
			src += 2

			count := int(b0>>4) + 3
			disp := (int(b0&0x0f)<<8 | int(b1)) + 1

			for i := 0; i < count && uint32(len(out)) < size; i++ {
				from := len(out) - disp
				if from < 0 {
					// the real BIOS would read whatever is before the
					// destination. we use zero
					out = append(out, 0)
				} else {
					out = append(out, out[from])
				}
			}
		}
	}

	return out, nil
}

// decompressRL returns the data decompressed from the run-length stream at
// src
//
// each block starts with a flag byte. if bit 7 is set the next byte is
// repeated (flag & 0x7f) + 3 times. otherwise (flag & 0x7f) + 1 bytes follow
// and are copied as is
func decompressRL(bus Bus, src uint32) ([]byte, error) {
	size, err := readHeader(bus, src, compressionRL)
	if err != nil {
		return nil, err
	}
	src += 4

	out := make([]byte, 0, size)

	for uint32(len(out)) < size {
		flag, err := read8(bus, src)
		if err != nil {
			return nil, err
		}
		src++

		if flag&0x80 == 0x80 {
			b, err := read8(bus, src)
			if err != nil {
				return nil, err
			}
			src++
			for i := 0; i < int(flag&0x7f)+3 && uint32(len(out)) < size; i++ {
				out = append(out, b)
			}
			continue
		}

		for i := 0; i < int(flag&0x7f)+1 && uint32(len(out)) < size; i++ {
			b, err := read8(bus, src)
			if err != nil {
				return nil, err
			}
			src++
			out = append(out, b)
		}
	}

	return out, nil
}

// writeBytes writes the data one byte at a time. used for work RAM
func writeBytes(bus Bus, dest uint32, data []byte) error {
	for i, b := range data {
		if err := write8(bus, dest+uint32(i), b); err != nil {
			return err
		}
	}
	return nil
}

// writeHalfwords writes the data in pairs of bytes. used for video RAM, which
// can't be written a byte at a time. an odd final byte is padded with zero
func writeHalfwords(bus Bus, dest uint32, data []byte) error {
	for i := 0; i < len(data); i += 2 {
		v := uint16(data[i])
		if i+1 < len(data) {
			v |= uint16(data[i+1]) << 8
		}
		if err := write16(bus, dest+uint32(i), v); err != nil {
			return err
		}
	}
	return nil
}

func lz77Wram(_ *HLE, r *Registers, bus Bus) (Result, error) {
	data, err := decompressLZ77(bus, r[0])
	if err != nil {
		return Result{}, err
	}
	return Result{}, writeBytes(bus, r[1], data)
}

func lz77Vram(_ *HLE, r *Registers, bus Bus) (Result, error) {
	data, err := decompressLZ77(bus, r[0])
	if err != nil {
		return Result{}, err
	}
	return Result{}, writeHalfwords(bus, r[1], data)
}

func rlWram(_ *HLE, r *Registers, bus Bus) (Result, error) {
	data, err := decompressRL(bus, r[0])
	if err != nil {
		return Result{}, err
	}
	return Result{}, writeBytes(bus, r[1], data)
}

func rlVram(_ *HLE, r *Registers, bus Bus) (Result, error) {
	data, err := decompressRL(bus, r[0])
	if err != nil {
		return Result{}, err
	}
	return Result{}, writeHalfwords(bus, r[1], data)
}
