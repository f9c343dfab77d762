// Where: internal/domain/build/android.go
// What: Fixed Android build constants.
// Why: Expose application id, SDK levels, NDK version, and JVM target to the build configurator.
package build

import (
	"fmt"
	"strings"
)

const (
	DefaultNamespace     = "com.example.arcane"
	DefaultApplicationID = "me.ihjas.arcane"
	DefaultMinSdk        = 23
	DefaultCompileSdk    = 35
	DefaultTargetSdk     = 35
	DefaultNdkVersion    = "27.0.12077973"
	DefaultJavaVersion   = 11
	DefaultVersionName   = "1.0.0"
	DefaultVersionCode   = 1
)

// AndroidConfig mirrors the android { } and defaultConfig { } blocks of the app module.
type AndroidConfig struct {
	Namespace     string `json:"namespace" yaml:"namespace"`
	ApplicationID string `json:"applicationId" yaml:"applicationId"`
	CompileSdk    int    `json:"compileSdk" yaml:"compileSdk"`
	MinSdk        int    `json:"minSdk" yaml:"minSdk"`
	TargetSdk     int    `json:"targetSdk" yaml:"targetSdk"`
	NdkVersion    string `json:"ndkVersion" yaml:"ndkVersion"`
	JavaVersion   int    `json:"javaVersion" yaml:"javaVersion"`
	VersionCode   int    `json:"versionCode" yaml:"versionCode"`
	VersionName   string `json:"versionName" yaml:"versionName"`
}

// DefaultAndroidConfig returns the constants of the application module.
func DefaultAndroidConfig() AndroidConfig {
	return AndroidConfig{
		Namespace:     DefaultNamespace,
		ApplicationID: DefaultApplicationID,
		CompileSdk:    DefaultCompileSdk,
		MinSdk:        DefaultMinSdk,
		TargetSdk:     DefaultTargetSdk,
		NdkVersion:    DefaultNdkVersion,
		JavaVersion:   DefaultJavaVersion,
		VersionCode:   DefaultVersionCode,
		VersionName:   DefaultVersionName,
	}
}

// JavaVersionName returns the Gradle JavaVersion constant, e.g. VERSION_11.
func (c AndroidConfig) JavaVersionName() string {
	return fmt.Sprintf("VERSION_%d", c.JavaVersion)
}

// JvmTarget returns the Kotlin jvmTarget string.
func (c AndroidConfig) JvmTarget() string {
	return fmt.Sprintf("%d", c.JavaVersion)
}

// Validate checks the invariants between SDK levels.
func (c AndroidConfig) Validate() error {
	if strings.TrimSpace(c.ApplicationID) == "" {
		return fmt.Errorf("application id is required")
	}
	if strings.TrimSpace(c.Namespace) == "" {
		return fmt.Errorf("namespace is required")
	}
	if c.MinSdk <= 0 || c.CompileSdk <= 0 || c.TargetSdk <= 0 {
		return fmt.Errorf("sdk levels must be positive")
	}
	if c.MinSdk > c.TargetSdk {
		return fmt.Errorf("minSdk %d exceeds targetSdk %d", c.MinSdk, c.TargetSdk)
	}
	if c.TargetSdk > c.CompileSdk {
		return fmt.Errorf("targetSdk %d exceeds compileSdk %d", c.TargetSdk, c.CompileSdk)
	}
	if c.JavaVersion <= 0 {
		return fmt.Errorf("java version must be positive")
	}
	if c.VersionCode <= 0 {
		return fmt.Errorf("version code must be positive")
	}
	return nil
}
