// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package topographica holds the whisker barrel-map modeling packages: stimulus
generation for whisker deflection experiments and feature-preference map
measurement on trained networks.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* vmang: von Mises (circular normal) directional noise with deterministic,
index-addressed seeding, so per-whisker noise draws are reproducible
regardless of evaluation order.

* barrel: whisker-array geometry -- the coarse per-whisker grid, its
block-replicated expansion to the dense barrel (sensory unit) grid, the
per-unit maximally effective direction (MED) map, and integer coordinate
snapping for connection-field centers.

* wpat: stimulus pattern generators -- the PatternGen capability, a linear
boundary (moving front) pattern, and DeflectStim, the noisy multi-whisker
deflection stimulus.

* fmap: feature-map measurement -- sweeping a stimulus feature space over a
live network, accumulating per-unit response distributions, and reducing
them to preference and selectivity maps (circular statistics for cyclic
features) in a named view registry.

* examples/barrelmap: a complete runnable simulation that trains a
self-organizing leabra cortical map on whisker deflections and measures its
whisker and direction preference maps.
*/
package topographica
