// SPDX-FileCopyrightText: 2014-2021 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package cesu8

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// decoder transforms CESU-8 encoded bytes into UTF-8.
type decoder struct{}

func (decoder) Reset() {}

func (decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !FullRune(src[nSrc:]) {
			if !atEOF {
				err = transform.ErrShortSrc
				return
			}
		}
		r, size := DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size <= 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			err = transform.ErrShortSrc
			return
		}
		n := utf8.RuneLen(r)
		if n < 0 {
			n = utf8.RuneLen(utf8.RuneError)
			r = utf8.RuneError
		}
		if nDst+n > len(dst) {
			err = transform.ErrShortDst
			return
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
	}
	return
}

// encoder transforms UTF-8 encoded bytes into CESU-8.
type encoder struct{}

func (encoder) Reset() {}

func (encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !utf8.FullRune(src[nSrc:]) && !atEOF {
			err = transform.ErrShortSrc
			return
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		n := RuneLen(r)
		if n < 0 {
			n = RuneLen(utf8.RuneError)
			r = utf8.RuneError
		}
		if nDst+n > len(dst) {
			err = transform.ErrShortDst
			return
		}
		nDst += EncodeRune(dst[nDst:], r)
		nSrc += size
	}
	return
}

// DefaultDecoder returns a fresh CESU-8-to-UTF-8 transform.Transformer.
func DefaultDecoder() transform.Transformer { return decoder{} }

// DefaultEncoder returns a fresh UTF-8-to-CESU-8 transform.Transformer.
func DefaultEncoder() transform.Transformer { return encoder{} }
