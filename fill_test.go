package autowire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocrud/autowire"
)

func TestFill(t *testing.T) {
	reg := newRegistry()
	put(reg, "", &Database{DSN: "fill"})
	put(reg, "", &OrderRepo{})

	var repo *OrderRepo
	require.NoError(t, autowire.Fill(&repo, reg))
	require.NotNil(t, repo)

	// Fill 之后，解析值内部的注入属性同样被填充
	db, ok := repo.DB.Get()
	require.True(t, ok)
	assert.Equal(t, "fill", db.DSN)
}

func TestFillNamed(t *testing.T) {
	reg := newRegistry()
	put(reg, "master", &Database{DSN: "m"})

	var db *Database
	require.NoError(t, autowire.FillNamed(&db, "master", reg))
	assert.Equal(t, "m", db.DSN)

	var missing *Database
	err := autowire.FillNamed(&missing, "slave", reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "autowire:")
}

func TestFillFirstContainerWins(t *testing.T) {
	c1 := newRegistry()
	put(c1, "", &Database{DSN: "one"})
	c2 := newRegistry()
	put(c2, "", &Database{DSN: "two"})

	var db *Database
	require.NoError(t, autowire.Fill(&db, c1, c2))
	assert.Equal(t, "one", db.DSN)
	assert.Empty(t, c2.asked, "c2 must not be consulted after c1 succeeded")
}

func TestFillInterface(t *testing.T) {
	e := &emailNotifier{}
	reg := newRegistry()
	put[notifier](reg, "", e)

	var n notifier
	require.NoError(t, autowire.Fill(&n, reg))
	require.Same(t, e, n)
}

func TestFillArgumentErrors(t *testing.T) {
	reg := newRegistry()

	err := autowire.Fill(42, reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a pointer")

	err = autowire.Fill((*Database)(nil), reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pointer is nil")
}

func TestMustFillPanics(t *testing.T) {
	var db *Database
	assert.Panics(t, func() { autowire.MustFill(&db, newRegistry()) })
}
