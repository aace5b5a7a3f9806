package tensor

import "fmt"

// Conv2D applies a zero-padded 2-D cross-correlation of kernels over in.
// Kernels are laid out (outChannels, inChannels, kH, kW) and bias, when
// non-nil, carries one value per output channel. Output spatial dims follow
// (in - k + 2*pad)/stride + 1; geometry that does not divide evenly by the
// stride, or channel counts that disagree, fail before any arithmetic runs.
func Conv2D(in, kernels Tensor4, bias []float64, stride, padding int) (Tensor4, error) {
	if stride <= 0 {
		return Tensor4{}, fmt.Errorf("conv2d: stride %d is not positive", stride)
	}
	if padding < 0 {
		return Tensor4{}, fmt.Errorf("conv2d: padding %d is negative", padding)
	}
	if kernels.C != in.C {
		return Tensor4{}, fmt.Errorf("conv2d: kernel input channels %d do not match input channels %d", kernels.C, in.C)
	}
	if bias != nil && len(bias) != kernels.N {
		return Tensor4{}, fmt.Errorf("conv2d: bias length %d does not match output channels %d", len(bias), kernels.N)
	}

	spanH := in.H - kernels.H + 2*padding
	spanW := in.W - kernels.W + 2*padding
	if spanH < 0 || spanW < 0 {
		return Tensor4{}, fmt.Errorf("conv2d: kernel (%d, %d) exceeds padded input (%d, %d)", kernels.H, kernels.W, in.H+2*padding, in.W+2*padding)
	}
	if spanH%stride != 0 || spanW%stride != 0 {
		return Tensor4{}, fmt.Errorf("conv2d: stride %d does not divide padded span (%d, %d)", stride, spanH, spanW)
	}
	outH := spanH/stride + 1
	outW := spanW/stride + 1

	out, err := New(in.N, kernels.N, outH, outW)
	if err != nil {
		return Tensor4{}, err
	}

	for n := 0; n < in.N; n++ {
		for oc := 0; oc < kernels.N; oc++ {
			for oh := 0; oh < outH; oh++ {
				for ow := 0; ow < outW; ow++ {
					sum := 0.0
					if bias != nil {
						sum = bias[oc]
					}
					for ic := 0; ic < in.C; ic++ {
						for kh := 0; kh < kernels.H; kh++ {
							ih := oh*stride + kh - padding
							if ih < 0 || ih >= in.H {
								continue
							}
							for kw := 0; kw < kernels.W; kw++ {
								iw := ow*stride + kw - padding
								if iw < 0 || iw >= in.W {
									continue
								}
								sum += in.At(n, ic, ih, iw) * kernels.At(oc, ic, kh, kw)
							}
						}
					}
					out.Set(n, oc, oh, ow, sum)
				}
			}
		}
	}
	return out, nil
}

// MaxPool2D downsamples each channel by taking the maximum over
// non-overlapping size x size windows. Spatial dims must divide evenly.
func MaxPool2D(in Tensor4, size int) (Tensor4, error) {
	if size <= 0 {
		return Tensor4{}, fmt.Errorf("maxpool2d: window %d is not positive", size)
	}
	if in.H%size != 0 || in.W%size != 0 {
		return Tensor4{}, fmt.Errorf("maxpool2d: window %d does not divide input (%d, %d)", size, in.H, in.W)
	}
	outH := in.H / size
	outW := in.W / size

	out, err := New(in.N, in.C, outH, outW)
	if err != nil {
		return Tensor4{}, err
	}

	for n := 0; n < in.N; n++ {
		for c := 0; c < in.C; c++ {
			for oh := 0; oh < outH; oh++ {
				for ow := 0; ow < outW; ow++ {
					best := in.At(n, c, oh*size, ow*size)
					for kh := 0; kh < size; kh++ {
						for kw := 0; kw < size; kw++ {
							if v := in.At(n, c, oh*size+kh, ow*size+kw); v > best {
								best = v
							}
						}
					}
					out.Set(n, c, oh, ow, best)
				}
			}
		}
	}
	return out, nil
}
