package popdat

// ImageHeader is the 6-byte packed image header: 16-bit height, 16-bit
// width, 2 info bytes, little-endian, no padding.
type ImageHeader struct {
	Width, Height int
	TwoLayer      bool
	Depth         int
	Method        CompressMethod
}

// parseImageHeader reads and validates the header; width or height ==0
// or >2048 is invalid.
func parseImageHeader(payload []byte) (ImageHeader, error) {
	r := newByteReader(payload)
	height, err := r.u16()
	if err != nil {
		return ImageHeader{}, errBadDimensions
	}
	width, err := r.u16()
	if err != nil {
		return ImageHeader{}, errBadDimensions
	}
	info0, err := r.u8()
	if err != nil {
		return ImageHeader{}, errBadDimensions
	}
	info1, err := r.u8()
	if err != nil {
		return ImageHeader{}, errBadDimensions
	}

	if width == 0 || height == 0 || width > 2048 || height > 2048 {
		return ImageHeader{}, errBadDimensions
	}

	hdr := ImageHeader{Width: int(width), Height: int(height)}
	if info0 == 1 {
		hdr.TwoLayer = true
		return hdr, nil
	}

	hdr.Depth = int((info1>>4)&7) + 1
	hdr.Method = CompressMethod(info1 & 0x0F)
	return hdr, nil
}

// Image is the decoded output of the image pipeline: width, height,
// always-4 channels, and a tightly packed RGBA buffer.
type Image struct {
	Width, Height int
	RGBA          []byte
}

// DecodeImage runs the full pipeline: parse header, run the
// appropriate codec, expand to 8-bpp indexed, then resolve against pal
// into RGBA with index 0 transparent. flipY writes rows bottom-up while
// reading top-down.
func DecodeImage(payload []byte, pal *GenericPalette, flipY bool) (Image, error) {
	hdr, err := parseImageHeader(payload)
	if err != nil {
		return Image{}, &ImageDecodeError{Op: "parse header", Err: err}
	}

	body := payload[6:]
	var indexed []byte

	if hdr.TwoLayer {
		indexed, err = decompressPOP2(body, hdr.Width, hdr.Height)
		if err != nil {
			return Image{}, &ImageDecodeError{Op: "decompress two-layer", Err: err}
		}
	} else {
		stride := (hdr.Depth*hdr.Width + 7) / 8
		intermediateLen := stride * hdr.Height
		// Column-major wrap operates on the packed intermediate buffer, so
		// the cursor's stride is the byte row stride, not the pixel width;
		// for depth==8 the two coincide.
		intermediate, err := Decompress(hdr.Method, body, intermediateLen, stride, hdr.Height)
		if err != nil {
			return Image{}, &ImageDecodeError{Op: "decompress single-layer", Err: err}
		}
		if hdr.Depth == 8 {
			indexed = intermediate
		} else {
			indexed, err = expandSubByte(intermediate, hdr.Width, hdr.Height, hdr.Depth, stride)
			if err != nil {
				return Image{}, &ImageDecodeError{Op: "expand sub-byte", Err: err}
			}
		}
	}

	if len(indexed) != hdr.Width*hdr.Height {
		return Image{}, &ImageDecodeError{Op: "decode", Err: errOverrun}
	}

	img := Image{Width: hdr.Width, Height: hdr.Height, RGBA: make([]byte, hdr.Width*hdr.Height*4)}
	for y := 0; y < hdr.Height; y++ {
		destY := y
		if flipY {
			destY = hdr.Height - 1 - y
		}
		for x := 0; x < hdr.Width; x++ {
			idx := indexed[y*hdr.Width+x]
			c := pal.At(int(idx))
			alpha := byte(255)
			if idx == 0 {
				alpha = 0
			}
			o := (destY*hdr.Width + x) * 4
			img.RGBA[o+0] = c.R
			img.RGBA[o+1] = c.G
			img.RGBA[o+2] = c.B
			img.RGBA[o+3] = alpha
		}
	}
	return img, nil
}
