package instance

// fillTables populates SuffixCount, NextOcc, and PatEmbed in one
// right-to-left scan each, as original_source/src/instance.cpp's
// fill_in_data_structures implements.
func fillTables(inst *Instance) {
	inst.SuffixCount = buildSuffixCount(inst)
	inst.NextOcc = buildNextOcc(inst)
	inst.PatEmbed = buildPatEmbed(inst)
}

// buildSuffixCount returns SuffixCount[a][i][j] = occurrences of letter a in
// S[i][j:], built via a right-to-left scan that carries a running count.
func buildSuffixCount(inst *Instance) [][][]int {
	table := make([][][]int, inst.Sigma)
	for a := 0; a < inst.Sigma; a++ {
		perString := make([][]int, inst.M)
		for i := 0; i < inst.M; i++ {
			s := inst.S[i]
			counts := make([]int, len(s))
			count := 0
			for j := len(s) - 1; j >= 0; j-- {
				if s[j] == a {
					count++
				}
				counts[j] = count
			}
			perString[i] = counts
		}
		table[a] = perString
	}
	return table
}

// buildNextOcc returns NextOcc[a][i][j] = smallest k>=j with S[i][k]==a, or
// len(S[i]) if none, built via a right-to-left scan carrying the last seen
// position of a.
func buildNextOcc(inst *Instance) [][][]int {
	table := make([][][]int, inst.Sigma)
	for a := 0; a < inst.Sigma; a++ {
		perString := make([][]int, inst.M)
		for i := 0; i < inst.M; i++ {
			s := inst.S[i]
			next := make([]int, len(s))
			pos := len(s)
			for j := len(s) - 1; j >= 0; j-- {
				if s[j] == a {
					pos = j
				}
				next[j] = pos
			}
			perString[i] = next
		}
		table[a] = perString
	}
	return table
}

// buildPatEmbed returns PatEmbed[i][j][x] = largest index k in S[i] such
// that Pat[j][x:] embeds as a subsequence into S[i][k:], starting its first
// match at k, or -1 if no such embedding exists. Built with a right-to-left
// scan of S[i] alongside a pointer walking Pat[j] from its end.
func buildPatEmbed(inst *Instance) [][][]int {
	table := make([][][]int, inst.M)
	for i := 0; i < inst.M; i++ {
		s := inst.S[i]
		perPattern := make([][]int, inst.P)
		for j := 0; j < inst.P; j++ {
			pj := inst.Pat[j]
			embed := make([]int, len(pj))
			for x := range embed {
				embed[x] = -1
			}
			maxIndex := len(pj) - 1
			for its := len(s) - 1; its >= 0 && maxIndex >= 0; its-- {
				if pj[maxIndex] == s[its] {
					embed[maxIndex] = its
					maxIndex--
				}
			}
			perPattern[j] = embed
		}
		table[i] = perPattern
	}
	return table
}
