// Package inputs resolves action inputs and environment values.
//
// GitHub Actions passes each `with:` input as an environment variable named
// INPUT_<NAME>, upper-cased with spaces replaced by underscores. Values from
// --env-file files are parsed with godotenv and take precedence over the
// process environment; later files override earlier ones.
package inputs
