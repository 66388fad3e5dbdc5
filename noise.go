package tin

import "math"

// Noise returns Ken Perlin's improved noise at (x, y, z), roughly in
// [-1, 1]. The lattice repeats every 256 units.
func Noise(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	xi := int(fx) & 255
	yi := int(fy) & 255
	zi := int(fz) & 255
	x, y, z = x-fx, y-fy, z-fz

	u, v, w := fade(x), fade(y), fade(z)

	a := perm[xi] + yi
	aa := perm[a] + zi
	ab := perm[a+1] + zi
	b := perm[xi+1] + yi
	ba := perm[b] + zi
	bb := perm[b+1] + zi

	return lerpNoise(w,
		lerpNoise(v,
			lerpNoise(u, grad3(perm[aa], x, y, z), grad3(perm[ba], x-1, y, z)),
			lerpNoise(u, grad3(perm[ab], x, y-1, z), grad3(perm[bb], x-1, y-1, z))),
		lerpNoise(v,
			lerpNoise(u, grad3(perm[aa+1], x, y, z-1), grad3(perm[ba+1], x-1, y, z-1)),
			lerpNoise(u, grad3(perm[ab+1], x, y-1, z-1), grad3(perm[bb+1], x-1, y-1, z-1))))
}

// Noise2 returns 2D Perlin noise at (x, y).
func Noise2(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255
	x, y = x-fx, y-fy

	u, v := fade(x), fade(y)

	a := perm[xi] + yi
	b := perm[xi+1] + yi
	aa, ab := perm[a], perm[a+1]
	ba, bb := perm[b], perm[b+1]

	x1 := lerpNoise(u, grad2(perm[aa], x, y), grad2(perm[ba], x-1, y))
	x2 := lerpNoise(u, grad2(perm[ab], x, y-1), grad2(perm[bb], x-1, y-1))
	return lerpNoise(v, x1, x2)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerpNoise(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad3 converts the low 4 bits of hash into one of 12 gradient directions.
func grad3(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

func grad2(hash int, x, y float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	v := x
	if h < 4 {
		v = y
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// perm is the reference permutation, repeated once so lookups of
// index+1 never wrap.
var perm = func() [512]int {
	var p [512]int
	for i := range p {
		p[i] = permutation[i&255]
	}
	return p
}()

var permutation = [256]int{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}
