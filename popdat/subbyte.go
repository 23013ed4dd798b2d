package popdat

// expandSubByte expands packed rows of depth bits per pixel (depth in
// {1,2,4,8}, stride = ceil(depth*width/8) bytes per row) to one output
// byte per pixel, MSB-first within each packed byte.
func expandSubByte(src []byte, width, height, depth, stride int) ([]byte, error) {
	if depth != 1 && depth != 2 && depth != 4 && depth != 8 {
		return nil, errUnknownMethod
	}
	if len(src) < stride*height {
		return nil, errOverrun
	}

	out := make([]byte, width*height)
	perByte := 8 / depth
	mask := byte(1<<uint(depth)) - 1

	for y := 0; y < height; y++ {
		row := src[y*stride : (y+1)*stride]
		for x := 0; x < width; x++ {
			byteIdx := x / perByte
			slot := x % perByte
			// MSB-first: slot 0 occupies the highest bits of the packed byte.
			shift := uint(8 - depth - slot*depth)
			out[y*width+x] = (row[byteIdx] >> shift) & mask
		}
	}
	return out, nil
}
