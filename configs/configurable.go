package configs

// Configurable is implemented by typed values resolvable from config files
type Configurable interface {
	ConfigExpr() string
}
