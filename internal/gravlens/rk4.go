package gravlens

// step advances the ray by one fixed affine step dl using classical
// 4th-order Runge-Kutta and resyncs the Cartesian mirror. The stepper
// itself never fails; numeric blow-up is left for the termination
// tests to catch on the next iteration.
func (ray *Ray) step(dl, rs Real) {
	s0 := rayState{ray.R, ray.Theta, ray.Dr, ray.Dtheta, ray.Dphi}

	k1 := geodesicRHS(s0, ray.E, rs)
	k2 := geodesicRHS(s0.advance(k1, dl/2), ray.E, rs)
	k3 := geodesicRHS(s0.advance(k2, dl/2), ray.E, rs)
	k4 := geodesicRHS(s0.advance(k3, dl), ray.E, rs)

	w := dl / 6
	ray.R += w * (k1.dr + 2*k2.dr + 2*k3.dr + k4.dr)
	ray.Theta += w * (k1.dtheta + 2*k2.dtheta + 2*k3.dtheta + k4.dtheta)
	ray.Phi += w * (k1.dphi + 2*k2.dphi + 2*k3.dphi + k4.dphi)
	ray.Dr += w * (k1.d2r + 2*k2.d2r + 2*k3.d2r + k4.d2r)
	ray.Dtheta += w * (k1.d2theta + 2*k2.d2theta + 2*k3.d2theta + k4.d2theta)
	ray.Dphi += w * (k1.d2phi + 2*k2.d2phi + 2*k3.d2phi + k4.d2phi)

	// k1 stands in for the second derivatives of the updated state;
	// close enough for diagnostics, never used by the physics.
	ray.D2r = k1.d2r
	ray.D2phi = k1.d2phi

	ray.syncCartesian()
}
