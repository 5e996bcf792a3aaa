package scaffold

// Args builds the generator invocation for the config.
//
// The argument order is fixed by the external generator contract:
//
//	init --boot-version=<V> --java-version=<V> --build=<maven|gradle>
//	     --dependencies=<csv> --groupId=<G> --artifactId=<A>
//	     --name=<N> --package-name=<P> <N>
//
// Language and packaging are part of the configuration surface but not
// of the invocation.
//
// Parameters:
//   - None (uses the receiver's fields)
//
// Returns:
//   - []string: Deterministic argument list for the generator
//
// Concurrency:
//   - Safe for concurrent use (pure function of the config)
//
// Performance:
//   - O(1) slice assembly
func (c *ProjectConfig) Args() []string {
	return []string{
		"init",
		"--boot-version=" + c.BootVersion,
		"--java-version=" + c.JavaVersion,
		"--build=" + c.BuildType,
		"--dependencies=" + c.Dependencies,
		"--groupId=" + c.GroupID,
		"--artifactId=" + c.ArtifactID,
		"--name=" + c.Name,
		"--package-name=" + c.PackageName,
		c.Name,
	}
}
