// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/ent/recording"
)

// BotDeploymentCreate is the builder for creating a BotDeployment entity.
type BotDeploymentCreate struct {
	config
	mutation *BotDeploymentMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *BotDeploymentCreate) SetOrgID(v string) *BotDeploymentCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetRecordingID sets the "recording_id" field.
func (_c *BotDeploymentCreate) SetRecordingID(v string) *BotDeploymentCreate {
	_c.mutation.SetRecordingID(v)
	return _c
}

// SetBotID sets the "bot_id" field.
func (_c *BotDeploymentCreate) SetBotID(v string) *BotDeploymentCreate {
	_c.mutation.SetBotID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BotDeploymentCreate) SetStatus(v botdeployment.Status) *BotDeploymentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BotDeploymentCreate) SetNillableStatus(v *botdeployment.Status) *BotDeploymentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStatusHistory sets the "status_history" field.
func (_c *BotDeploymentCreate) SetStatusHistory(v []map[string]interface{}) *BotDeploymentCreate {
	_c.mutation.SetStatusHistory(v)
	return _c
}

// SetScheduledJoinTime sets the "scheduled_join_time" field.
func (_c *BotDeploymentCreate) SetScheduledJoinTime(v time.Time) *BotDeploymentCreate {
	_c.mutation.SetScheduledJoinTime(v)
	return _c
}

// SetActualJoinTime sets the "actual_join_time" field.
func (_c *BotDeploymentCreate) SetActualJoinTime(v time.Time) *BotDeploymentCreate {
	_c.mutation.SetActualJoinTime(v)
	return _c
}

// SetNillableActualJoinTime sets the "actual_join_time" field if the given value is not nil.
func (_c *BotDeploymentCreate) SetNillableActualJoinTime(v *time.Time) *BotDeploymentCreate {
	if v != nil {
		_c.SetActualJoinTime(*v)
	}
	return _c
}

// SetLeaveTime sets the "leave_time" field.
func (_c *BotDeploymentCreate) SetLeaveTime(v time.Time) *BotDeploymentCreate {
	_c.mutation.SetLeaveTime(v)
	return _c
}

// SetNillableLeaveTime sets the "leave_time" field if the given value is not nil.
func (_c *BotDeploymentCreate) SetNillableLeaveTime(v *time.Time) *BotDeploymentCreate {
	if v != nil {
		_c.SetLeaveTime(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *BotDeploymentCreate) SetErrorCode(v string) *BotDeploymentCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *BotDeploymentCreate) SetNillableErrorCode(v *string) *BotDeploymentCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *BotDeploymentCreate) SetErrorMessage(v string) *BotDeploymentCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *BotDeploymentCreate) SetNillableErrorMessage(v *string) *BotDeploymentCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *BotDeploymentCreate) SetVersion(v int) *BotDeploymentCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *BotDeploymentCreate) SetNillableVersion(v *int) *BotDeploymentCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BotDeploymentCreate) SetCreatedAt(v time.Time) *BotDeploymentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BotDeploymentCreate) SetNillableCreatedAt(v *time.Time) *BotDeploymentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BotDeploymentCreate) SetUpdatedAt(v time.Time) *BotDeploymentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BotDeploymentCreate) SetNillableUpdatedAt(v *time.Time) *BotDeploymentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BotDeploymentCreate) SetID(v string) *BotDeploymentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRecording sets the "recording" edge to the Recording entity.
func (_c *BotDeploymentCreate) SetRecording(v *Recording) *BotDeploymentCreate {
	return _c.SetRecordingID(v.ID)
}

// Mutation returns the BotDeploymentMutation object of the builder.
func (_c *BotDeploymentCreate) Mutation() *BotDeploymentMutation {
	return _c.mutation
}

// Save creates the BotDeployment in the database.
func (_c *BotDeploymentCreate) Save(ctx context.Context) (*BotDeployment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BotDeploymentCreate) SaveX(ctx context.Context) *BotDeployment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotDeploymentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotDeploymentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BotDeploymentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := botdeployment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := botdeployment.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := botdeployment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := botdeployment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BotDeploymentCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "BotDeployment.org_id"`)}
	}
	if _, ok := _c.mutation.RecordingID(); !ok {
		return &ValidationError{Name: "recording_id", err: errors.New(`ent: missing required field "BotDeployment.recording_id"`)}
	}
	if _, ok := _c.mutation.BotID(); !ok {
		return &ValidationError{Name: "bot_id", err: errors.New(`ent: missing required field "BotDeployment.bot_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BotDeployment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := botdeployment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BotDeployment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledJoinTime(); !ok {
		return &ValidationError{Name: "scheduled_join_time", err: errors.New(`ent: missing required field "BotDeployment.scheduled_join_time"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "BotDeployment.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BotDeployment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BotDeployment.updated_at"`)}
	}
	if len(_c.mutation.RecordingIDs()) == 0 {
		return &ValidationError{Name: "recording", err: errors.New(`ent: missing required edge "BotDeployment.recording"`)}
	}
	return nil
}

func (_c *BotDeploymentCreate) sqlSave(ctx context.Context) (*BotDeployment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected BotDeployment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BotDeploymentCreate) createSpec() (*BotDeployment, *sqlgraph.CreateSpec) {
	var (
		_node = &BotDeployment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(botdeployment.Table, sqlgraph.NewFieldSpec(botdeployment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(botdeployment.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.BotID(); ok {
		_spec.SetField(botdeployment.FieldBotID, field.TypeString, value)
		_node.BotID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(botdeployment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StatusHistory(); ok {
		_spec.SetField(botdeployment.FieldStatusHistory, field.TypeJSON, value)
		_node.StatusHistory = value
	}
	if value, ok := _c.mutation.ScheduledJoinTime(); ok {
		_spec.SetField(botdeployment.FieldScheduledJoinTime, field.TypeTime, value)
		_node.ScheduledJoinTime = value
	}
	if value, ok := _c.mutation.ActualJoinTime(); ok {
		_spec.SetField(botdeployment.FieldActualJoinTime, field.TypeTime, value)
		_node.ActualJoinTime = &value
	}
	if value, ok := _c.mutation.LeaveTime(); ok {
		_spec.SetField(botdeployment.FieldLeaveTime, field.TypeTime, value)
		_node.LeaveTime = &value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(botdeployment.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(botdeployment.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(botdeployment.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(botdeployment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(botdeployment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RecordingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   botdeployment.RecordingTable,
			Columns: []string{botdeployment.RecordingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RecordingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BotDeploymentCreateBulk is the builder for creating many BotDeployment entities in bulk.
type BotDeploymentCreateBulk struct {
	config
	err      error
	builders []*BotDeploymentCreate
}

// Save creates the BotDeployment entities in the database.
func (_c *BotDeploymentCreateBulk) Save(ctx context.Context) ([]*BotDeployment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BotDeployment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BotDeploymentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BotDeploymentCreateBulk) SaveX(ctx context.Context) []*BotDeployment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotDeploymentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotDeploymentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
